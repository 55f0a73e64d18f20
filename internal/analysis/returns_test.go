package analysis

import (
	"errors"
	"testing"
)

func TestDailyReturns_KnownValues(t *testing.T) {
	in := priceTable([]string{"AAA"}, [][]float64{
		{100},
		{110},
	})
	out, err := DailyReturns(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Rows() != 1 {
		t.Fatalf("expected 1 return row, got %d", out.Rows())
	}
	if got := out.Values[0][0]; got != 0.10 {
		t.Errorf("expected return 0.10, got %v", got)
	}
	if !out.Dates[0].Equal(in.Dates[1]) {
		t.Errorf("return row should carry the second date, got %s", out.Dates[0])
	}
}

func TestDailyReturns_RowCount(t *testing.T) {
	in := priceTable([]string{"AAA", "BBB"}, [][]float64{
		{100, 50},
		{110, 55},
		{121, 44},
		{121, 66},
	})
	out, err := DailyReturns(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Rows() != in.Rows()-1 {
		t.Errorf("expected %d rows, got %d", in.Rows()-1, out.Rows())
	}
}

func TestDailyReturns_TooFewRows(t *testing.T) {
	for _, rows := range [][][]float64{
		{},
		{{100}},
	} {
		in := priceTable([]string{"AAA"}, rows)
		if _, err := DailyReturns(in); !errors.Is(err, ErrInsufficientData) {
			t.Errorf("rows=%d: expected ErrInsufficientData, got %v", len(rows), err)
		}
	}
}
