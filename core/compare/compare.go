// Package compare finds the first position where two sequences diverge.
package compare

import "napoop-core/record"

// Gap stands in for the missing symbol when one sequence is shorter.
const Gap = '-'

// Result is the outcome of a comparison. A zero Position means the
// sequences match.
type Result struct {
	Position int  // 1-based
	A, B     byte // symbols at Position, Gap past the end
}

// Match reports whether no mismatch was found.
func (r Result) Match() bool { return r.Position == 0 }

func fold(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// Sequences compares a and b case-insensitively.
func Sequences(a, b string) Result {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if fold(a[i]) != fold(b[i]) {
			return Result{Position: i + 1, A: a[i], B: b[i]}
		}
	}
	switch {
	case len(a) > n:
		return Result{Position: n + 1, A: a[n], B: Gap}
	case len(b) > n:
		return Result{Position: n + 1, A: Gap, B: b[n]}
	}
	return Result{}
}

// Records compares the sequences of two records.
func Records(a, b record.Sequence) Result {
	return Sequences(a.Sequence(), b.Sequence())
}
