package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/setsquared/internal/randutil"
	"github.com/lox/setsquared/set"
)

type CLI struct {
	Cards   []int  `arg:"" help:"Card indices in [0,81) forming the layout" required:"true"`
	Variant string `default:"set" enum:"set,superset" help:"Game variant: set or superset"`
	Seed    int64  `default:"0" help:"RNG seed for hint selection (0 for random)"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	cardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	stuckStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("setsquared-odds"),
		kong.Description("Inspect a layout of cards: features, matches, and a hint."),
		kong.UsageOnError(),
	)

	layout, err := parseLayout(cli.Cards)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	rules, err := rulesFor(cli.Variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	printLayout(layout)
	fmt.Println()
	printMatches(rules, layout, cli.Seed)

	ctx.Exit(0)
}

func parseLayout(indices []int) ([]set.Card, error) {
	seen := make(map[int]bool)
	layout := make([]set.Card, 0, len(indices))

	for _, ix := range indices {
		if ix < 0 || ix >= set.DeckSize {
			return nil, fmt.Errorf("card index %d out of range [0,%d)", ix, set.DeckSize)
		}
		if seen[ix] {
			return nil, fmt.Errorf("duplicate card index %d", ix)
		}
		seen[ix] = true
		layout = append(layout, set.NewCard(ix))
	}
	return layout, nil
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

func printLayout(layout []set.Card) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, col := range []string{"card", "count", "shape", "color", "shading"} {
		fmt.Fprintf(w, "%s\t", headerStyle.Render(col))
	}
	fmt.Fprintln(w)

	for _, card := range layout {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t\n",
			cardStyle.Render(fmt.Sprintf("%d", card.Index())),
			card.Count(),
			card.Shape(),
			card.Color(),
			card.Shading())
	}
	w.Flush()
}

func printMatches(rules set.Rules, layout []set.Card, seed int64) {
	name := rules.Name()
	count := rules.CountSets(layout)

	if rules.Stuck(layout) {
		fmt.Println(stuckStyle.Render(fmt.Sprintf("No %s in this layout.", name)))
		return
	}

	plural := ""
	if count != 1 {
		plural = "s"
	}
	fmt.Println(matchStyle.Render(fmt.Sprintf("%d %s%s found.", count, name, plural)))

	rng := randutil.New(randutil.Seed(seed))
	if hint := rules.Hint(rng, layout); hint != nil {
		fmt.Printf("Hint: cards %d and %d extend to a %s.\n",
			hint[0].Index(), hint[1].Index(), name)
	}
}
