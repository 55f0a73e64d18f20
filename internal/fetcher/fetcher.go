package fetcher

import (
	"context"
	"errors"
	"time"

	"tickerlens/internal/model"
)

// ErrNetwork reports that the provider could not be reached or the
// request could not complete.
var ErrNetwork = errors.New("provider unreachable")

// ErrDataUnavailable reports that the provider has no data for a ticker
// in the requested range.
var ErrDataUnavailable = errors.New("no data available")

// Fetcher defines the interface for retrieving adjusted close price
// history. A zero end time means "up to today".
type Fetcher interface {
	FetchDailyCloses(ctx context.Context, tickers []string, start, end time.Time) (*model.PriceTable, error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Table *model.PriceTable
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(_ context.Context, _ []string, _, _ time.Time) (*model.PriceTable, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Table, nil
}
