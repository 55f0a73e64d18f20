package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tickerlens/internal/analysis"
	"tickerlens/internal/fetcher"
	"tickerlens/internal/model"
	"tickerlens/internal/recorder"
	"tickerlens/internal/report"
)

// Options configures a single analysis run.
type Options struct {
	Tickers []string
	Start   time.Time
	End     time.Time // zero means "up to today"
	SaveCSV bool
	TopN    int
	Base    float64
}

// Result carries the outputs of one completed run.
type Result struct {
	Prices      *model.PriceTable // cleaned
	Returns     *model.ReturnsTable
	Correlation *model.CorrelationMatrix
	TopPairs    []model.CorrelatedPair
	ChartPath   string
	HeatmapPath string
	CSVPath     string
}

// Run executes the full pipeline: fetch, align, returns, correlation,
// normalization, artifacts. Stages run strictly in order and the first
// failure aborts the run; no stage substitutes defaults or proceeds with
// degraded data.
func Run(ctx context.Context, f fetcher.Fetcher, w *report.Writer, rec recorder.Recorder, opts Options) (*Result, error) {
	log.Info().
		Strs("tickers", opts.Tickers).
		Time("start", opts.Start).
		Str("source", f.Name()).
		Msg("fetching price history")
	raw, err := f.FetchDailyCloses(ctx, opts.Tickers, opts.Start, opts.End)
	if err != nil {
		return nil, fmt.Errorf("fetch prices: %w", err)
	}

	cleaned, err := analysis.Clean(raw)
	if err != nil {
		return nil, fmt.Errorf("align prices: %w", err)
	}
	if dropped := raw.Rows() - cleaned.Rows(); dropped > 0 {
		log.Debug().Int("dropped", dropped).Msg("dropped dates with incomplete prices")
	}
	log.Info().Int("rows", cleaned.Rows()).Int("tickers", cleaned.Cols()).Msg("aligned price table")

	returns, err := analysis.DailyReturns(cleaned)
	if err != nil {
		return nil, fmt.Errorf("compute returns: %w", err)
	}

	corr, err := analysis.Correlate(returns)
	if err != nil {
		return nil, fmt.Errorf("compute correlation: %w", err)
	}
	if undef := corr.Undefined(); len(undef) > 0 {
		log.Warn().Strs("tickers", undef).Msg("zero-variance returns, correlations undefined")
	}
	pairs := analysis.TopPairs(corr, opts.TopN)

	normalized, err := analysis.Normalize(cleaned, opts.Base)
	if err != nil {
		return nil, fmt.Errorf("normalize prices: %w", err)
	}

	stamp := report.Stamp(time.Now())
	res := &Result{
		Prices:      cleaned,
		Returns:     returns,
		Correlation: corr,
		TopPairs:    pairs,
	}

	res.ChartPath, err = w.WriteNormalizedChart(normalized, opts.Base, stamp)
	if err != nil {
		return nil, fmt.Errorf("write normalized chart: %w", err)
	}
	log.Info().Str("path", res.ChartPath).Msg("saved normalized price chart")

	res.HeatmapPath, err = w.WriteHeatmap(corr, stamp)
	if err != nil {
		return nil, fmt.Errorf("write correlation heatmap: %w", err)
	}
	log.Info().Str("path", res.HeatmapPath).Msg("saved correlation heatmap")

	if opts.SaveCSV {
		res.CSVPath, err = w.WritePricesCSV(cleaned, stamp)
		if err != nil {
			return nil, fmt.Errorf("write prices csv: %w", err)
		}
		log.Info().Str("path", res.CSVPath).Msg("saved adjusted close csv")
	}

	record := &recorder.RunRecord{
		Tickers:     cleaned.Tickers,
		Start:       opts.Start,
		End:         opts.End,
		AlignedRows: cleaned.Rows(),
		ChartPath:   res.ChartPath,
		HeatmapPath: res.HeatmapPath,
		CSVPath:     res.CSVPath,
	}
	if len(pairs) > 0 {
		record.TopFirst = pairs[0].First
		record.TopSecond = pairs[0].Second
		record.TopCorrelation = pairs[0].Correlation
	}
	if err := rec.RecordRun(record); err != nil {
		log.Error().Err(err).Msg("record run")
	}

	return res, nil
}
