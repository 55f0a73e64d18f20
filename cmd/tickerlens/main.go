package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tickerlens/internal/config"
	"tickerlens/internal/recorder"
)

var (
	flagConfig string
	flagDebug  bool
)

// rootCmd is the base command for the tickerlens CLI.
var rootCmd = &cobra.Command{
	Use:   "tickerlens",
	Short: "Ticker correlation and relative-performance analysis",
	Long: `tickerlens downloads historical adjusted close prices for a set of
tickers, computes daily returns and their Pearson correlation matrix,
normalizes prices to a common base, and writes timestamped chart and
CSV artifacts.

Example usage:
  tickerlens run -t AAPL,MSFT,GOOG -s 2022-01-01     # one-shot analysis
  tickerlens run --save-csv                          # default ETF set, plus CSV
  tickerlens watch --cron "0 0 22 * * 1-5"           # re-run on a schedule`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	cobra.OnInitialize(setupLogging)
}

func setupLogging() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// loadConfig resolves the config file path, loads it, and applies the
// shared command-line flag overrides.
func loadConfig() (*config.Config, error) {
	path := flagConfig
	if path == "" {
		if v := os.Getenv("TICKERLENS_CONFIG"); v != "" {
			path = v
		} else {
			path = "configs/config.yaml"
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flagTickers != "" {
		cfg.Tickers = config.ParseTickers(flagTickers)
	}
	if flagStart != "" {
		cfg.Start = flagStart
	}
	if flagEnd != "" {
		cfg.End = flagEnd
	}
	if flagOutdir != "" {
		cfg.OutputDir = flagOutdir
	}
	if flagSaveCSV {
		cfg.SaveCSV = true
	}
	if flagTopN > 0 {
		cfg.TopPairs = flagTopN
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildRecorder returns the sqlite recorder when configured, falling back
// to a noop recorder so a broken database never blocks an analysis run.
func buildRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	r, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
		return recorder.NewNoopRecorder()
	}
	return r
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
