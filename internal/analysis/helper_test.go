package analysis

import (
	"time"

	"tickerlens/internal/model"
)

// priceTable builds a PriceTable over consecutive dates starting
// 2024-01-02, one row per entry of prices.
func priceTable(tickers []string, prices [][]float64) *model.PriceTable {
	dates := make([]time.Time, len(prices))
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := range dates {
		dates[i] = base.AddDate(0, 0, i)
	}
	return &model.PriceTable{Tickers: tickers, Dates: dates, Values: prices}
}

func returnsTable(tickers []string, rets [][]float64) *model.ReturnsTable {
	dates := make([]time.Time, len(rets))
	base := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	for i := range dates {
		dates[i] = base.AddDate(0, 0, i)
	}
	return &model.ReturnsTable{Tickers: tickers, Dates: dates, Values: rets}
}
