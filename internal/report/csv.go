package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"tickerlens/internal/model"
)

// WritePricesCSV exports the adjusted close price table: header row
// "Date" plus one column per ticker, one row per trading date. Returns
// the path of the CSV.
func (w *Writer) WritePricesCSV(t *model.PriceTable, stamp string) (string, error) {
	if err := w.ensureDir(); err != nil {
		return "", err
	}

	path := filepath.Join(w.Dir, fmt.Sprintf("prices_%s_adj_close.csv", stamp))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w: %w", path, ErrOutput, err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(append([]string{"Date"}, t.Tickers...)); err != nil {
		return "", fmt.Errorf("write csv header: %w: %w", ErrOutput, err)
	}
	for i, d := range t.Dates {
		row := make([]string, 0, t.Cols()+1)
		row = append(row, d.Format("2006-01-02"))
		for j := range t.Tickers {
			row = append(row, strconv.FormatFloat(t.Values[i][j], 'f', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w: %w", ErrOutput, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush %s: %w: %w", path, ErrOutput, err)
	}
	return path, nil
}
