package analysis

import (
	"fmt"
	"math"
	"sort"

	"tickerlens/internal/model"
)

// Correlate computes the pairwise Pearson correlation matrix of the
// return series over all rows. A ticker whose returns have zero variance
// has no defined correlation; all of its entries, diagonal included, are
// NaN so the condition stays visible instead of masquerading as 0 or 1.
func Correlate(r *model.ReturnsTable) (*model.CorrelationMatrix, error) {
	if r.Cols() < 2 {
		return nil, fmt.Errorf("correlation needs at least 2 tickers, have %d: %w",
			r.Cols(), ErrInsufficientData)
	}
	if r.Rows() < 2 {
		return nil, fmt.Errorf("correlation needs at least 2 return rows, have %d: %w",
			r.Rows(), ErrInsufficientData)
	}

	n := r.Cols()
	cols := make([][]float64, n)
	constant := make([]bool, n)
	for j := 0; j < n; j++ {
		cols[j] = r.Column(j)
		constant[j] = sumSquaredDev(cols[j]) == 0
	}

	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var c float64
			switch {
			case constant[i] || constant[j]:
				c = math.NaN()
			case i == j:
				c = 1.0
			default:
				c = pearson(cols[i], cols[j])
			}
			values[i][j], values[j][i] = c, c
		}
	}
	return &model.CorrelationMatrix{
		Tickers: append([]string(nil), r.Tickers...),
		Values:  values,
	}, nil
}

// TopPairs ranks the distinct ticker pairs of m by descending signed
// correlation and returns the first n. Pairs with equal correlation are
// ordered lexicographically so the ranking is deterministic. Self-pairs
// never appear, undefined (NaN) pairs are excluded, and each unordered
// pair appears exactly once. n <= 0 means all pairs.
func TopPairs(m *model.CorrelationMatrix, n int) []model.CorrelatedPair {
	var pairs []model.CorrelatedPair
	for i := 0; i < len(m.Tickers); i++ {
		for j := i + 1; j < len(m.Tickers); j++ {
			v := m.Values[i][j]
			if math.IsNaN(v) {
				continue
			}
			first, second := m.Tickers[i], m.Tickers[j]
			if first > second {
				first, second = second, first
			}
			pairs = append(pairs, model.CorrelatedPair{First: first, Second: second, Correlation: v})
		}
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].Correlation != pairs[b].Correlation {
			return pairs[a].Correlation > pairs[b].Correlation
		}
		if pairs[a].First != pairs[b].First {
			return pairs[a].First < pairs[b].First
		}
		return pairs[a].Second < pairs[b].Second
	})
	if n > 0 && len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}

// pearson computes the Pearson correlation coefficient of two equal-length
// series. Returns NaN when either series has zero variance.
func pearson(a, b []float64) float64 {
	n := len(a)
	var ma, mb float64
	for i := 0; i < n; i++ {
		ma += a[i]
		mb += b[i]
	}
	ma /= float64(n)
	mb /= float64(n)

	var num, da, db float64
	for i := 0; i < n; i++ {
		x := a[i] - ma
		y := b[i] - mb
		num += x * y
		da += x * x
		db += y * y
	}
	den := math.Sqrt(da * db)
	if den == 0 {
		return math.NaN()
	}
	return num / den
}

func sumSquaredDev(s []float64) float64 {
	var mean float64
	for _, v := range s {
		mean += v
	}
	mean /= float64(len(s))
	var ss float64
	for _, v := range s {
		d := v - mean
		ss += d * d
	}
	return ss
}
