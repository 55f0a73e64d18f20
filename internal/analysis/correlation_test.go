package analysis

import (
	"errors"
	"math"
	"testing"
)

func TestCorrelate_IdenticalSeries(t *testing.T) {
	rets := returnsTable([]string{"AAA", "BBB"}, [][]float64{
		{0.10, 0.10},
		{-0.05, -0.05},
		{0.20, 0.20},
	})
	m, err := Correlate(rets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.At(0, 1); got != 1.0 {
		t.Errorf("identical series: expected correlation exactly 1.0, got %v", got)
	}
}

func TestCorrelate_SymmetricWithUnitDiagonal(t *testing.T) {
	rets := returnsTable([]string{"AAA", "BBB", "CCC"}, [][]float64{
		{0.01, -0.02, 0.03},
		{0.02, 0.01, -0.01},
		{-0.01, 0.03, 0.02},
		{0.04, -0.01, 0.01},
	})
	m, err := Correlate(rets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range m.Tickers {
		if m.At(i, i) != 1.0 {
			t.Errorf("diagonal (%d,%d) = %v, want exactly 1.0", i, i, m.At(i, i))
		}
		for j := range m.Tickers {
			if m.At(i, j) != m.At(j, i) {
				t.Errorf("matrix not symmetric at (%d,%d)", i, j)
			}
			if i != j {
				if v := m.At(i, j); v < -1 || v > 1 {
					t.Errorf("correlation (%d,%d) = %v outside [-1,1]", i, j, v)
				}
			}
		}
	}
}

func TestCorrelate_PerfectInverse(t *testing.T) {
	rets := returnsTable([]string{"AAA", "BBB"}, [][]float64{
		{0.10, -0.10},
		{-0.05, 0.05},
		{0.20, -0.20},
	})
	m, err := Correlate(rets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.At(0, 1); math.Abs(got+1.0) > 1e-12 {
		t.Errorf("inverse series: expected correlation -1.0, got %v", got)
	}
}

func TestCorrelate_ZeroVariance(t *testing.T) {
	rets := returnsTable([]string{"AAA", "FLAT", "BBB"}, [][]float64{
		{0.10, 0.0, 0.02},
		{-0.05, 0.0, 0.01},
		{0.20, 0.0, -0.03},
	})
	m, err := Correlate(rets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Every entry involving the constant column is undefined, diagonal included.
	for i, ticker := range m.Tickers {
		v := m.At(i, 1)
		if !math.IsNaN(v) {
			t.Errorf("correlation (%s,FLAT) = %v, want NaN", ticker, v)
		}
	}
	if v := m.At(0, 2); math.IsNaN(v) {
		t.Error("correlation between non-constant columns should stay defined")
	}
	undef := m.Undefined()
	if len(undef) != 1 || undef[0] != "FLAT" {
		t.Errorf("Undefined() = %v, want [FLAT]", undef)
	}
	for _, p := range TopPairs(m, 0) {
		if p.First == "FLAT" || p.Second == "FLAT" {
			t.Errorf("undefined pair (%s,%s) made it into the ranking", p.First, p.Second)
		}
	}
}

func TestCorrelate_InsufficientData(t *testing.T) {
	oneCol := returnsTable([]string{"AAA"}, [][]float64{{0.1}, {0.2}})
	if _, err := Correlate(oneCol); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("single column: expected ErrInsufficientData, got %v", err)
	}
	oneRow := returnsTable([]string{"AAA", "BBB"}, [][]float64{{0.1, 0.2}})
	if _, err := Correlate(oneRow); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("single row: expected ErrInsufficientData, got %v", err)
	}
}

func TestTopPairs_NoSelfOrDuplicatePairs(t *testing.T) {
	rets := returnsTable([]string{"CCC", "AAA", "BBB"}, [][]float64{
		{0.01, 0.03, -0.02},
		{-0.02, 0.01, 0.02},
		{0.03, -0.01, 0.01},
	})
	m, err := Correlate(rets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pairs := TopPairs(m, 0)
	if len(pairs) != 3 {
		t.Fatalf("3 tickers should give 3 unique pairs, got %d", len(pairs))
	}
	seen := map[string]bool{}
	for _, p := range pairs {
		if p.First == p.Second {
			t.Errorf("self-pair (%s,%s)", p.First, p.Second)
		}
		if p.First > p.Second {
			t.Errorf("pair (%s,%s) not in canonical order", p.First, p.Second)
		}
		key := p.First + "/" + p.Second
		if seen[key] {
			t.Errorf("duplicate pair %s", key)
		}
		seen[key] = true
	}
}

func TestTopPairs_OrderAndTrim(t *testing.T) {
	rets := returnsTable([]string{"AAA", "BBB", "CCC", "DDD"}, [][]float64{
		{0.01, 0.01, -0.01, 0.02},
		{0.02, 0.02, -0.02, 0.01},
		{-0.01, -0.01, 0.01, 0.03},
	})
	cm, err := Correlate(rets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pairs := TopPairs(cm, 2)
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	for i := 1; i < len(pairs); i++ {
		if pairs[i].Correlation > pairs[i-1].Correlation {
			t.Errorf("pairs not in descending order at %d", i)
		}
	}
	// AAA/BBB (identical) and AAA/CCC, BBB/CCC (inverse of both) are perfectly
	// correlated; the top pair must be the perfectly positive one.
	if pairs[0].First != "AAA" || pairs[0].Second != "BBB" {
		t.Errorf("top pair = (%s,%s), want (AAA,BBB)", pairs[0].First, pairs[0].Second)
	}
}

func TestTopPairs_TieBreakLexicographic(t *testing.T) {
	// AAA, BBB and CCC all identical, so the three pairwise correlations
	// are exactly 1.0 and only the ticker ordering can decide.
	rets := returnsTable([]string{"CCC", "BBB", "AAA"}, [][]float64{
		{0.01, 0.01, 0.01},
		{0.02, 0.02, 0.02},
		{-0.01, -0.01, -0.01},
	})
	m, err := Correlate(rets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pairs := TopPairs(m, 0)
	want := [][2]string{{"AAA", "BBB"}, {"AAA", "CCC"}, {"BBB", "CCC"}}
	if len(pairs) != len(want) {
		t.Fatalf("expected %d pairs, got %d", len(want), len(pairs))
	}
	for i, w := range want {
		if pairs[i].First != w[0] || pairs[i].Second != w[1] {
			t.Errorf("pair %d = (%s,%s), want (%s,%s)", i, pairs[i].First, pairs[i].Second, w[0], w[1])
		}
	}
}
