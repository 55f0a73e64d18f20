package analysis

import (
	"errors"
	"math"
	"testing"
)

func TestNormalize_FirstRowEqualsBase(t *testing.T) {
	in := priceTable([]string{"AAA", "BBB"}, [][]float64{
		{250, 80},
		{275, 72},
		{300, 88},
	})
	out, err := Normalize(in, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for j := range out.Tickers {
		if got := out.Values[0][j]; got != 100 {
			t.Errorf("first row col %d = %v, want 100", j, got)
		}
	}
	if got := out.Values[1][0]; math.Abs(got-110) > 1e-9 {
		t.Errorf("AAA day 2 = %v, want 110", got)
	}
	if got := out.Values[1][1]; math.Abs(got-90) > 1e-9 {
		t.Errorf("BBB day 2 = %v, want 90", got)
	}
}

func TestNormalize_PreservesShape(t *testing.T) {
	in := priceTable([]string{"AAA"}, [][]float64{{10}, {20}, {30}})
	out, err := Normalize(in, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Rows() != in.Rows() || out.Cols() != in.Cols() {
		t.Errorf("shape changed: %dx%d -> %dx%d", in.Rows(), in.Cols(), out.Rows(), out.Cols())
	}
	if in.Values[0][0] != 10 {
		t.Error("normalize mutated its input")
	}
}

func TestNormalize_BadBaseline(t *testing.T) {
	tests := []struct {
		name     string
		baseline float64
	}{
		{"zero baseline", 0},
		{"negative baseline", -5},
	}
	for _, tt := range tests {
		in := priceTable([]string{"AAA", "BAD"}, [][]float64{
			{100, tt.baseline},
			{110, 50},
		})
		if _, err := Normalize(in, 100); !errors.Is(err, ErrInvalidData) {
			t.Errorf("%s: expected ErrInvalidData, got %v", tt.name, err)
		}
	}
}

func TestNormalize_BadBase(t *testing.T) {
	in := priceTable([]string{"AAA"}, [][]float64{{100}, {110}})
	if _, err := Normalize(in, 0); !errors.Is(err, ErrInvalidData) {
		t.Errorf("base 0: expected ErrInvalidData, got %v", err)
	}
}
