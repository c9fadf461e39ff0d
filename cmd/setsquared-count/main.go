package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/setsquared/internal/dealcount"
	"github.com/lox/setsquared/internal/statistics"
)

type CLI struct {
	MinDeal int  `default:"4" help:"Smallest deal size to count"`
	MaxDeal int  `default:"7" help:"Largest deal size to count (counting grows combinatorially)"`
	Workers int  `default:"0" help:"Worker goroutines (0 for all CPUs)"`
	Verbose bool `short:"v" help:"Verbose logging"`
}

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("15"))

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("setsquared-count"),
		kong.Description("Finds all n-card deals that contain no SuperSets."),
		kong.UsageOnError(),
	)

	var logger *log.Logger
	if cli.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}

	fmt.Println("Finding all n-card deals that contain no SuperSets.")
	fmt.Println("This could take some time...")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, col := range []string{"deal", "supersets", "no supersets", "total", "% without", "time"} {
		fmt.Fprintf(w, "%s\t", headerStyle.Render(col))
	}
	fmt.Fprintln(w)
	w.Flush()

	for deal := cli.MinDeal; deal <= cli.MaxDeal; deal++ {
		result, err := dealcount.CountNullSuperSets(context.Background(), deal, cli.Workers)
		if err != nil {
			logger.Error("count failed", "deal", deal, "err", err)
			ctx.Exit(1)
		}
		logger.Debug("deal size counted", "deal", deal, "elapsed", result.Elapsed)

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.5f %%\t%s\t\n",
			result.DealSize,
			statistics.Pretty(result.SuperSetDeals()),
			statistics.Pretty(result.NullDeals),
			statistics.Pretty(result.Combinations),
			result.PctWithout(),
			result.Elapsed.Round(time.Millisecond))
		w.Flush()

		if result.NullDeals == 0 {
			// every deal of this size contains a superset; larger
			// deals can only do the same
			break
		}
	}

	ctx.Exit(0)
}
