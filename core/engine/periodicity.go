package engine

import (
	"napoop-core/oligo"
)

// DefaultWindow is the periodicity scan window used when none is given.
const DefaultWindow = 50

// Periodicity collects, for every occurrence of oligo, the offsets of the
// other occurrences that start within the following window of
// maxWindow+len(motif) letters. Offsets are relative to the occurrence and
// never zero; repeats are kept.
func (e *Engine) Periodicity(name string, maxWindow int) []int {
	motif := oligo.Motif(name)
	return offsets(oligo.Occurrences(e.seq(), motif), len(motif), len(e.seq()), maxWindow)
}

// PeriodicityAll runs Periodicity for several oligos with a single scan of
// the sequence. Results follow the order of names.
func (e *Engine) PeriodicityAll(names []string, maxWindow int) [][]int {
	motifs := make([]string, len(names))
	for i, n := range names {
		motifs[i] = oligo.Motif(n)
	}
	occ := oligo.NewScanner(motifs...).Scan(e.seq())
	out := make([][]int, len(names))
	for i := range motifs {
		out[i] = offsets(occ[i], len(motifs[i]), len(e.seq()), maxWindow)
	}
	return out
}

func offsets(occ []int, k, n, maxWindow int) []int {
	if len(occ) == 0 {
		return nil
	}
	span := maxWindow + k
	var out []int
	for i, start := range occ {
		limit := start + span
		if limit > n {
			limit = n
		}
		for _, next := range occ[i+1:] {
			if next+k > limit {
				break
			}
			out = append(out, next-start)
		}
	}
	return out
}

// PeriodRatio is the fraction of oligo occurrences that have another
// occurrence exactly period letters before or after them. The sign of
// period does not matter.
func (e *Engine) PeriodRatio(name string, period int) float64 {
	if period < 0 {
		period = -period
	}
	occ := oligo.Occurrences(e.seq(), oligo.Motif(name))
	if len(occ) == 0 || period == 0 {
		return 0
	}
	at := make(map[int]struct{}, len(occ))
	for _, p := range occ {
		at[p] = struct{}{}
	}
	hits := 0
	for _, p := range occ {
		_, before := at[p-period]
		_, after := at[p+period]
		if before || after {
			hits++
		}
	}
	return float64(hits) / float64(len(occ))
}

// Histogram counts how often each offset appears in offsets.
func Histogram(offsets []int) map[int]int {
	out := make(map[int]int, len(offsets))
	for _, d := range offsets {
		out[d]++
	}
	return out
}
