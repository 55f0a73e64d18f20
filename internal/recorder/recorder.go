package recorder

import "time"

// RunRecord summarizes one completed analysis run.
type RunRecord struct {
	Tickers        []string
	Start          time.Time
	End            time.Time
	AlignedRows    int
	TopFirst       string
	TopSecond      string
	TopCorrelation float64
	ChartPath      string
	HeatmapPath    string
	CSVPath        string
}

// Recorder persists run history for later inspection.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
