package report

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"tickerlens/internal/model"
)

// WriteNormalizedChart renders the normalized price series as a line
// chart with one line per ticker and returns the path of the PNG.
func (w *Writer) WriteNormalizedChart(t *model.PriceTable, base float64, stamp string) (string, error) {
	if err := w.ensureDir(); err != nil {
		return "", err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Normalized Price Chart (start = %g)", base)
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Normalized price"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Legend.Top = true

	for j, ticker := range t.Tickers {
		pts := make(plotter.XYs, t.Rows())
		for i, d := range t.Dates {
			pts[i].X = float64(d.Unix())
			pts[i].Y = t.Values[i][j]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return "", fmt.Errorf("plot %s: %w: %w", ticker, ErrOutput, err)
		}
		line.Color = plotutil.Color(j)
		p.Add(line)
		p.Legend.Add(ticker, line)
	}

	path := filepath.Join(w.Dir, fmt.Sprintf("normalized_prices_%s.png", stamp))
	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return "", fmt.Errorf("save %s: %w: %w", path, ErrOutput, err)
	}
	return path, nil
}
