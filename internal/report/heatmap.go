package report

import (
	"fmt"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"tickerlens/internal/model"
)

// corrGrid adapts a CorrelationMatrix to the plotter grid interface.
// NaN cells (undefined correlations) are left undrawn by the heatmap.
type corrGrid struct {
	m *model.CorrelationMatrix
}

func (g corrGrid) Dims() (c, r int)   { n := len(g.m.Tickers); return n, n }
func (g corrGrid) Z(c, r int) float64 { return g.m.Values[r][c] }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// tickerTicks labels integer axis positions with ticker symbols.
type tickerTicks struct {
	names []string
}

func (t tickerTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, name := range t.names {
		v := float64(i)
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: name})
	}
	return ticks
}

// WriteHeatmap renders the correlation matrix as an annotated heatmap on
// a diverging blue-red scale fixed to [-1, 1] and returns the PNG path.
// Undefined cells are annotated "n/a".
func (w *Writer) WriteHeatmap(m *model.CorrelationMatrix, stamp string) (string, error) {
	if err := w.ensureDir(); err != nil {
		return "", err
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	pal := cm.Palette(256)

	h := plotter.NewHeatMap(corrGrid{m}, pal)
	h.Min, h.Max = -1, 1

	p := plot.New()
	p.Title.Text = "Daily Returns Correlation Heatmap"
	p.X.Tick.Marker = tickerTicks{m.Tickers}
	p.Y.Tick.Marker = tickerTicks{m.Tickers}
	p.Add(h)

	var labels plotter.XYLabels
	for r := range m.Tickers {
		for c := range m.Tickers {
			v := m.Values[r][c]
			text := "n/a"
			if !math.IsNaN(v) {
				text = fmt.Sprintf("%.2f", v)
			}
			labels.XYs = append(labels.XYs, plotter.XY{X: float64(c), Y: float64(r)})
			labels.Labels = append(labels.Labels, text)
		}
	}
	annot, err := plotter.NewLabels(labels)
	if err != nil {
		return "", fmt.Errorf("annotate heatmap: %w: %w", ErrOutput, err)
	}
	p.Add(annot)

	path := filepath.Join(w.Dir, fmt.Sprintf("correlation_heatmap_%s.png", stamp))
	if err := p.Save(8*vg.Inch, 7*vg.Inch, path); err != nil {
		return "", fmt.Errorf("save %s: %w: %w", path, ErrOutput, err)
	}
	return path, nil
}
