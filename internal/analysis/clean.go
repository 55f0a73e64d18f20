package analysis

import (
	"fmt"
	"math"
	"strings"
	"time"

	"tickerlens/internal/model"
)

// Clean drops every date row with at least one missing cell, leaving only
// dates where all tickers have a price. Missing cells are never filled or
// interpolated; a partial row is dropped entirely.
func Clean(t *model.PriceTable) (*model.PriceTable, error) {
	dates := make([]time.Time, 0, t.Rows())
	values := make([][]float64, 0, t.Rows())
	for i, row := range t.Values {
		complete := true
		for _, v := range row {
			if math.IsNaN(v) {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		dates = append(dates, t.Dates[i])
		values = append(values, append([]float64(nil), row...))
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("no date has prices for all of %s: %w",
			strings.Join(t.Tickers, ","), ErrInsufficientData)
	}
	return &model.PriceTable{
		Tickers: append([]string(nil), t.Tickers...),
		Dates:   dates,
		Values:  values,
	}, nil
}
