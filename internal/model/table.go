package model

import (
	"math"
	"time"
)

// PriceTable holds adjusted close prices: rows keyed by trading date in
// chronological order, columns keyed by ticker in the order requested.
// A NaN cell means the ticker has no price on that date.
type PriceTable struct {
	Tickers []string
	Dates   []time.Time
	Values  [][]float64 // Values[i][j] = price of Tickers[j] on Dates[i]
}

// NewPriceTable allocates a table of the given shape with every cell
// marked missing.
func NewPriceTable(tickers []string, dates []time.Time) *PriceTable {
	values := make([][]float64, len(dates))
	for i := range values {
		row := make([]float64, len(tickers))
		for j := range row {
			row[j] = math.NaN()
		}
		values[i] = row
	}
	return &PriceTable{Tickers: tickers, Dates: dates, Values: values}
}

// Rows returns the number of dates in the table.
func (t *PriceTable) Rows() int { return len(t.Dates) }

// Cols returns the number of tickers in the table.
func (t *PriceTable) Cols() int { return len(t.Tickers) }

// ColumnIndex returns the position of ticker, or -1 if absent.
func (t *PriceTable) ColumnIndex(ticker string) int {
	for j, s := range t.Tickers {
		if s == ticker {
			return j
		}
	}
	return -1
}

// Column returns a copy of the price series for the column at index j.
func (t *PriceTable) Column(j int) []float64 {
	col := make([]float64, len(t.Values))
	for i, row := range t.Values {
		col[i] = row[j]
	}
	return col
}
