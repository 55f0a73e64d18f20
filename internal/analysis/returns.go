package analysis

import (
	"fmt"
	"time"

	"tickerlens/internal/model"
)

// DailyReturns computes the day-over-day fractional change per ticker.
// The first date has no prior price, so the result has one row fewer
// than the input.
func DailyReturns(t *model.PriceTable) (*model.ReturnsTable, error) {
	if t.Rows() < 2 {
		return nil, fmt.Errorf("need at least 2 price rows to compute returns, have %d: %w",
			t.Rows(), ErrInsufficientData)
	}
	values := make([][]float64, t.Rows()-1)
	for i := 1; i < t.Rows(); i++ {
		row := make([]float64, t.Cols())
		for j := range row {
			prev := t.Values[i-1][j]
			row[j] = (t.Values[i][j] - prev) / prev
		}
		values[i-1] = row
	}
	return &model.ReturnsTable{
		Tickers: append([]string(nil), t.Tickers...),
		Dates:   append([]time.Time(nil), t.Dates[1:]...),
		Values:  values,
	}, nil
}
