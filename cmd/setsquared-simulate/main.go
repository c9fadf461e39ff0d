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

	"github.com/lox/setsquared/internal/randutil"
	"github.com/lox/setsquared/internal/scenario"
	"github.com/lox/setsquared/internal/simulator"
	"github.com/lox/setsquared/internal/statistics"
	"github.com/lox/setsquared/set"
)

type CLI struct {
	Games      int    `default:"100000" help:"Number of games to simulate"`
	Variant    string `default:"set" enum:"set,superset" help:"Game variant: set or superset"`
	Seed       int64  `default:"0" help:"RNG seed (0 for random)"`
	Workers    int    `default:"0" help:"Worker goroutines (0 for all CPUs)"`
	Simplified bool   `help:"Play with the 27-card solid-only deck"`
	Scenarios  string `help:"Run the scenarios in an HCL file instead of the flags" type:"path"`
	Verbose    bool   `short:"v" help:"Verbose logging"`
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("setsquared-simulate"),
		kong.Description("Gather statistics for simulated games of Set and SuperSet."),
		kong.UsageOnError(),
	)

	var logger *log.Logger
	if cli.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}

	runs, err := buildRuns(cli, logger)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		ctx.Exit(1)
	}

	for _, run := range runs {
		if run.name != "" {
			fmt.Printf("%s\n\n", titleStyle.Render("scenario "+run.name))
		}
		fmt.Printf("Simulating %s games of %s (seed: %d)\n\n",
			statistics.Pretty(uint64(run.config.Games)), run.config.Rules.Name(), run.config.Seed)

		start := time.Now()
		stats, err := simulator.New(run.config).Run(context.Background())
		if err != nil {
			logger.Error("simulation failed", "err", err)
			ctx.Exit(1)
		}

		fmt.Printf("%s elapsed.\n\n", time.Since(start).Round(time.Millisecond))
		printLayoutStats(stats)
		fmt.Println()
		printEndGameStats(stats)
		fmt.Println()
	}

	ctx.Exit(0)
}

type run struct {
	name   string
	config simulator.Config
}

// buildRuns resolves the flag-driven single run, or every scenario in
// the given HCL file.
func buildRuns(cli CLI, logger *log.Logger) ([]run, error) {
	if cli.Scenarios == "" {
		rules, err := rulesFor(cli.Variant)
		if err != nil {
			return nil, err
		}
		return []run{{
			config: simulator.Config{
				Games:      cli.Games,
				Rules:      rules,
				Seed:       randutil.Seed(cli.Seed),
				Workers:    cli.Workers,
				Simplified: cli.Simplified,
				Logger:     logger,
			},
		}}, nil
	}

	file, err := scenario.Load(cli.Scenarios)
	if err != nil {
		return nil, err
	}

	var runs []run
	for _, s := range file.Scenarios {
		rules, err := s.Rules()
		if err != nil {
			return nil, err
		}
		runs = append(runs, run{
			name: s.Name,
			config: simulator.Config{
				Games:      s.Games,
				Rules:      rules,
				Seed:       randutil.Seed(s.Seed),
				Workers:    s.Workers,
				Simplified: s.Simplified,
				Logger:     logger,
			},
		})
	}
	return runs, nil
}

func rulesFor(variant string) (set.Rules, error) {
	switch variant {
	case "set":
		return set.SetRules{}, nil
	case "superset":
		return set.SuperSetRules{}, nil
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}
}

func printLayoutStats(stats *statistics.Statistics) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	printHeader(w, "layout", "matches", "no matches", "total", "ratio", "% stuck")

	for _, row := range stats.LayoutRows() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.5f %%\t\n",
			row.Size,
			statistics.Pretty(row.Matches),
			statistics.Pretty(row.NoMatches),
			statistics.Pretty(row.Total),
			row.Ratio,
			row.PctStuck)
	}
	w.Flush()
}

func printHeader(w *tabwriter.Writer, columns ...string) {
	for _, col := range columns {
		fmt.Fprintf(w, "%s\t", headerStyle.Render(col))
	}
	fmt.Fprintln(w)
}

func printEndGameStats(stats *statistics.Statistics) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	printHeader(w, "cards left", "occurrences", "% of games")

	for _, row := range stats.EndRows() {
		fmt.Fprintf(w, "%d\t%s\t%.5f %%\t\n",
			row.CardsLeft,
			statistics.Pretty(row.Occurrences),
			row.PctGames)
	}
	w.Flush()
}
