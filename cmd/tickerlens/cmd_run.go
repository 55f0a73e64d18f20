package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tickerlens/internal/fetcher"
	"tickerlens/internal/pipeline"
	"tickerlens/internal/report"
)

var (
	flagTickers string
	flagStart   string
	flagEnd     string
	flagOutdir  string
	flagSaveCSV bool
	flagTopN    int
)

// runCmd implements the 'tickerlens run' command: one fetch, one set of
// artifacts, exit.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch prices and write correlation artifacts once",
	RunE:  runAnalysis,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addAnalysisFlags(runCmd)
}

// addAnalysisFlags registers the flags shared by run and watch.
func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagTickers, "tickers", "t", "", "Comma-separated tickers (e.g. AAPL,MSFT)")
	cmd.Flags().StringVarP(&flagStart, "start", "s", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&flagEnd, "end", "e", "", "End date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVarP(&flagOutdir, "outdir", "o", "", "Output directory for charts and CSVs")
	cmd.Flags().BoolVar(&flagSaveCSV, "save-csv", false, "Also save the adjusted close prices to CSV")
	cmd.Flags().IntVar(&flagTopN, "top", 0, "Number of top correlated pairs to report")
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	start, end, err := cfg.DateRange()
	if err != nil {
		return err
	}

	rec := buildRecorder(cfg)
	defer rec.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := pipeline.Run(ctx,
		fetcher.NewYahooFetcher(cfg.Proxy),
		report.NewWriter(cfg.OutputDir),
		rec,
		pipeline.Options{
			Tickers: cfg.Tickers,
			Start:   start,
			End:     end,
			SaveCSV: cfg.SaveCSV,
			TopN:    cfg.TopPairs,
			Base:    cfg.Base,
		})
	if err != nil {
		return err
	}

	printTopPairs(res)
	return nil
}

func printTopPairs(res *pipeline.Result) {
	if len(res.TopPairs) == 0 {
		fmt.Println("No defined correlation pairs to report.")
		return
	}
	fmt.Println("Highest correlations (unique pairs):")
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, p := range res.TopPairs {
		fmt.Fprintf(tw, "%s\t%s\t%+.4f\n", p.First, p.Second, p.Correlation)
	}
	tw.Flush()
	if undef := res.Correlation.Undefined(); len(undef) > 0 {
		fmt.Printf("Undefined (zero-variance returns): %v\n", undef)
	}
}
