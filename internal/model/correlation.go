package model

import "math"

// CorrelationMatrix is the square, symmetric Pearson correlation matrix
// of a ReturnsTable, indexed by ticker on both axes. Entries involving a
// zero-variance ticker are undefined and stored as NaN rather than being
// coerced to a number.
type CorrelationMatrix struct {
	Tickers []string
	Values  [][]float64
}

// At returns the correlation between the tickers at positions i and j.
func (m *CorrelationMatrix) At(i, j int) float64 { return m.Values[i][j] }

// Undefined returns the tickers whose correlations are undefined because
// their return series has zero variance.
func (m *CorrelationMatrix) Undefined() []string {
	var out []string
	for i, ticker := range m.Tickers {
		if math.IsNaN(m.Values[i][i]) {
			out = append(out, ticker)
		}
	}
	return out
}

// CorrelatedPair is an unordered pair of distinct tickers and their
// correlation. First and Second are stored in lexicographic order so
// (A,B) and (B,A) collapse to one entry.
type CorrelatedPair struct {
	First       string
	Second      string
	Correlation float64
}
