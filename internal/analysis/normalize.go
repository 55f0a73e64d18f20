package analysis

import (
	"fmt"
	"time"

	"tickerlens/internal/model"
)

// DefaultBase is the value every series starts at after normalization.
const DefaultBase = 100.0

// Normalize rescales each ticker's price series so its first value equals
// base, making relative performance directly comparable. The baseline is
// the first row of the table.
func Normalize(t *model.PriceTable, base float64) (*model.PriceTable, error) {
	if t.Rows() == 0 {
		return nil, fmt.Errorf("no price rows to normalize: %w", ErrInsufficientData)
	}
	if base <= 0 {
		return nil, fmt.Errorf("normalization base %g must be positive: %w", base, ErrInvalidData)
	}
	baseline := t.Values[0]
	for j, v := range baseline {
		if v <= 0 {
			return nil, fmt.Errorf("baseline price %g for %s is not positive: %w",
				v, t.Tickers[j], ErrInvalidData)
		}
	}
	values := make([][]float64, t.Rows())
	for i, row := range t.Values {
		out := make([]float64, len(row))
		for j, v := range row {
			out[j] = v / baseline[j] * base
		}
		values[i] = out
	}
	return &model.PriceTable{
		Tickers: append([]string(nil), t.Tickers...),
		Dates:   append([]time.Time(nil), t.Dates...),
		Values:  values,
	}, nil
}
