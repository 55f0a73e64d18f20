package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tickerlens/internal/fetcher"
	"tickerlens/internal/pipeline"
	"tickerlens/internal/report"
	"tickerlens/internal/scheduler"
)

var flagCron string

// watchCmd implements the 'tickerlens watch' command: the same analysis
// as run, repeated on a cron schedule with fresh timestamped artifacts
// each time.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the analysis on a cron schedule",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addAnalysisFlags(watchCmd)
	watchCmd.Flags().StringVar(&flagCron, "cron", "", "Cron spec with seconds field (e.g. \"0 0 22 * * 1-5\")")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagCron != "" {
		cfg.Watch.Cron = flagCron
	}
	start, end, err := cfg.DateRange()
	if err != nil {
		return err
	}

	rec := buildRecorder(cfg)
	defer rec.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := fetcher.NewYahooFetcher(cfg.Proxy)
	w := report.NewWriter(cfg.OutputDir)
	opts := pipeline.Options{
		Tickers: cfg.Tickers,
		Start:   start,
		End:     end,
		SaveCSV: cfg.SaveCSV,
		TopN:    cfg.TopPairs,
		Base:    cfg.Base,
	}

	sched := scheduler.New(func() {
		if _, err := pipeline.Run(ctx, f, w, rec, opts); err != nil {
			log.Error().Err(err).Msg("scheduled analysis failed")
		}
	})
	if err := sched.Register(cfg.Watch.Cron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	log.Info().Str("cron", cfg.Watch.Cron).Msg("watch mode running, press Ctrl+C to stop")
	sched.RunNow()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, stopping")
	return nil
}
