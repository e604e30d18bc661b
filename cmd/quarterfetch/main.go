package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"quarterfetch/cmd"
	"quarterfetch/internal/app"
	"quarterfetch/internal/logger"
	"quarterfetch/internal/util"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := cmd.Options{}

	root := &cobra.Command{
		Use:           "quarterfetch",
		Short:         "Fetch quarterly revenue and EPS per ticker into JSON snapshots",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.OutDir, "out", "data", "output directory")
	root.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "optional dotenv file with secrets")

	root.AddCommand(newFetchCmd(&opts), newShowCmd(&opts))
	return root
}

func newFetchCmd(opts *cmd.Options) *cobra.Command {
	var (
		tickersFile  string
		delay        time.Duration
		writeSummary bool
	)

	c := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch every ticker and write <out>/<TICKER>.json and <out>/index.json",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			deps, err := cmd.InitializeDependencies(*opts)
			if err != nil {
				return err
			}
			ctx = logger.WithContext(ctx, logger.New())

			tickers := deps.TickerListRepository.Load(tickersFile)
			out, err := deps.FetchHandler.Run(ctx, app.RunInput{
				Tickers:      tickers,
				Delay:        delay,
				WriteSummary: writeSummary,
			})
			if out != nil {
				printRun(c, out)
			}
			return err
		},
	}
	c.Flags().StringVar(&tickersFile, "tickers", "tickers.json", "JSON array of ticker symbols (defaults used if missing)")
	c.Flags().DurationVar(&delay, "delay", 500*time.Millisecond, "pause between tickers")
	c.Flags().BoolVar(&writeSummary, "csv", false, "also write <out>/summary.csv")
	c.Flags().IntVar(&opts.HistoryYears, "history-years", 5, "years of quarterly history to request")

	return c
}

func newShowCmd(opts *cmd.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show TICKER",
		Short: "Print a previously written snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies(*opts)
			if err != nil {
				return err
			}
			results, err := deps.SnapshotRepository.ReadTicker(strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			util.Pprint(results)
			return nil
		},
	}
}

func printRun(c *cobra.Command, out *app.RunOutput) {
	w := c.OutOrStdout()
	fmt.Fprintf(w, "run %s: processed %d tickers\n", out.RunID, len(out.Processed))

	failed := make([]string, 0, len(out.Failed))
	for symbol := range out.Failed {
		failed = append(failed, symbol)
	}
	sort.Strings(failed)
	for _, symbol := range failed {
		fmt.Fprintf(w, "  failed %s: %v\n", symbol, out.Failed[symbol])
	}
}
