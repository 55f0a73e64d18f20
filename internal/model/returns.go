package model

import "time"

// ReturnsTable holds day-over-day fractional returns. It has the same
// column layout as the PriceTable it was derived from, and one row per
// date starting from the second date of that table: the first date has
// no prior price, so it produces no return.
type ReturnsTable struct {
	Tickers []string
	Dates   []time.Time
	Values  [][]float64 // Values[i][j] = return of Tickers[j] on Dates[i]
}

// Rows returns the number of return observations per ticker.
func (t *ReturnsTable) Rows() int { return len(t.Dates) }

// Cols returns the number of tickers in the table.
func (t *ReturnsTable) Cols() int { return len(t.Tickers) }

// Column returns a copy of the return series for the column at index j.
func (t *ReturnsTable) Column(j int) []float64 {
	col := make([]float64, len(t.Values))
	for i, row := range t.Values {
		col[i] = row[j]
	}
	return col
}
