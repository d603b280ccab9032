// core/engine/engine.go
package engine

import (
	"strings"

	"napoop-core/gencode"
	"napoop-core/iupac"
	"napoop-core/record"
)

// Filler pads regions that extend past either end of a sequence.
const Filler = 'n'

// Engine runs sequence operations over a record.
type Engine struct {
	rec record.Sequence
}

// New wraps rec.
func New(rec record.Sequence) *Engine { return &Engine{rec: rec} }

func (e *Engine) seq() string { return e.rec.Sequence() }

// Length is the number of letters in the sequence.
func (e *Engine) Length() int { return len(e.seq()) }

// Complementary returns the reverse-complement, preserving case.
func (e *Engine) Complementary() string { return iupac.RevComp(e.seq()) }

// CpG is the observed/expected CpG ratio and the G+C fraction.
type CpG struct {
	Score float64
	GC    float64
}

// CpGScore computes cg*len/(c*g) over the lower-cased sequence. The score is
// zero when the sequence is empty or lacks either c or g; S counts as a G+C
// site for the fraction.
func (e *Engine) CpGScore() CpG {
	s := strings.ToLower(e.seq())
	n := len(s)
	if n == 0 {
		return CpG{}
	}
	var c, g, ss, cg int
	for i := 0; i < n; i++ {
		switch s[i] {
		case 'c':
			c++
			if i+1 < n && s[i+1] == 'g' {
				cg++
			}
		case 'g':
			g++
		case 's':
			ss++
		}
	}
	out := CpG{GC: float64(c+g+ss) / float64(n)}
	if c > 0 && g > 0 {
		out.Score = float64(cg) * float64(n) / (float64(c) * float64(g))
	}
	return out
}

// Composition counts each letter of the lower-cased sequence.
func (e *Engine) Composition() map[byte]int {
	s := e.seq()
	out := make(map[byte]int)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[c]++
	}
	return out
}

// Snip extracts the 1-based inclusive region begin..end. When begin > end
// the bounds are swapped and the reverse-complement of the region is
// returned. Out-of-range bounds are clamped to the sequence.
func (e *Engine) Snip(begin, end int) (string, error) {
	s := e.seq()
	n := len(s)
	flip := begin > end
	if flip {
		begin, end = end, begin
	}
	if n == 0 {
		return "", nil
	}
	switch {
	case begin < 1:
		begin = 1
	case begin > n:
		begin = n
	}
	switch {
	case end < 0:
		end = 1
	case end > n:
		end = n
	}
	if end < begin {
		return "", nil
	}
	if begin < 1 || end > n {
		return "", ErrSubstring
	}
	region := s[begin-1 : end]
	if flip {
		return iupac.RevComp(region), nil
	}
	return region, nil
}

// MaxPadded is the longest region SnipPadded will build.
const MaxPadded = 1 << 30

// SnipPadded extracts the 1-based inclusive region begin..end without
// clamping: positions outside the sequence are filled with Filler.
func (e *Engine) SnipPadded(begin, end int) (string, error) {
	if begin > end {
		return "", &InvertedRangeError{Begin: begin, End: end}
	}
	// end >= begin, so the unsigned difference is exact even across the int range
	if uint64(end)-uint64(begin) >= MaxPadded {
		return "", &RegionTooLongError{Begin: begin, End: end, Max: MaxPadded}
	}
	s := e.seq()
	n := len(s)

	var lead, trail int
	if begin < 1 {
		lead = min(end, 0) - begin + 1
	}
	if end > n {
		trail = end - max(begin, n+1) + 1
	}
	lo, hi := max(begin, 1)-1, min(end, n)
	mid := ""
	if lo < hi {
		mid = s[lo:hi]
	}
	filler := string(rune(Filler))
	return strings.Repeat(filler, lead) + mid + strings.Repeat(filler, trail), nil
}

// Translate reads frame 0..2 on the forward strand at that offset, and
// frame 3..5 on the reverse-complement at offset frame-3.
func (e *Engine) Translate(frame int) (string, error) {
	var strand string
	switch {
	case frame >= 0 && frame <= 2:
		strand = e.seq()
	case frame >= 3 && frame <= 5:
		strand = e.Complementary()
		frame -= 3
	default:
		return "", ErrFrame
	}
	if frame > len(strand) {
		return "", nil
	}
	return gencode.Translate(strand[frame:]), nil
}
