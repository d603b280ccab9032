package engine

import (
	"reflect"
	"testing"
)

func TestPeriodicityNoMotif(t *testing.T) {
	if got := eng("aattaattaatt").Periodicity("CpG", DefaultWindow); len(got) != 0 {
		t.Fatalf("expected no offsets, got %v", got)
	}
	if got := eng("acgt").Periodicity("", DefaultWindow); len(got) != 0 {
		t.Fatalf("empty oligo should yield nothing, got %v", got)
	}
}

func TestPeriodicity(t *testing.T) {
	//          0123456789012
	e := eng("cgaacgaacgttt")
	// cg at 0, 4, 8
	got := e.Periodicity("CpG", 50)
	want := []int{4, 8, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Periodicity = %v, want %v", got, want)
	}
	// window 6 + 2: from 0 covers [0,8) so only the occurrence at 4 fits
	got = e.Periodicity("cg", 6)
	want = []int{4, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Periodicity(window 6) = %v, want %v", got, want)
	}
}

func TestHistogram(t *testing.T) {
	got := Histogram([]int{4, 8, 4})
	if !reflect.DeepEqual(got, map[int]int{4: 2, 8: 1}) {
		t.Fatalf("Histogram = %v", got)
	}
}

func TestPeriodRatio(t *testing.T) {
	e := eng("cgaacgaacgtttttcg")
	// cg at 0, 4, 8, 15: 0,4,8 have a partner 4 away; 15 does not
	if got := e.PeriodRatio("CpG", 4); got != 0.75 {
		t.Fatalf("PeriodRatio = %v, want 0.75", got)
	}
	if got := e.PeriodRatio("ApT", 4); got != 0 {
		t.Fatalf("PeriodRatio with no occurrences = %v, want 0", got)
	}
	if got := e.PeriodRatio("CpG", -4); got != 0.75 {
		t.Fatalf("PeriodRatio with negative period = %v, want 0.75", got)
	}
	if got := e.PeriodRatio("CpG", 0); got != 0 {
		t.Fatalf("PeriodRatio with period 0 = %v, want 0", got)
	}
}

func TestPeriodicityAllMatchesSingle(t *testing.T) {
	e := eng("cgaacgaacgtttaattaacg")
	names := []string{"CpG", "ApA", "TpT"}
	all := e.PeriodicityAll(names, 10)
	for i, n := range names {
		if want := e.Periodicity(n, 10); !reflect.DeepEqual(all[i], want) {
			t.Errorf("PeriodicityAll[%s] = %v, want %v", n, all[i], want)
		}
	}
}
