package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/moshav/deliveries"
	"github.com/moshav/deliveries/renderer"
)

// statsCmd holds the flags for the 'stats' subcommand.
type statsCmd struct {
	from string
	to   string
	all  bool
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display delivery statistics for a date range" }
func (*statsCmd) Usage() string {
	return `dlvr stats [-from <date>] [-to <date>] [-all]

  Displays the latest delivery, the deliveries in the range, aggregate
  totals, and per-item per-market totals. The default range is the first
  day of the current month through today; -all removes both bounds.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Lower date bound, inclusive. Empty with -to empty selects month-to-date.")
	f.StringVar(&c.to, "to", "", "Upper date bound, inclusive.")
	f.BoolVar(&c.all, "all", false, "Ignore date bounds and report on the whole store.")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.from, c.to, c.all)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	list, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	filtered := deliveries.FilterByRange(list, r)
	stats := &renderer.Stats{
		Range:    r,
		Filtered: filtered,
		Totals:   deliveries.Sum(filtered),
		CrossTab: deliveries.CrossTabulate(filtered, activeCatalog()),
		Currency: currency(),
	}
	// The latest delivery is shown regardless of the filter.
	if len(list) > 0 {
		stats.Latest = &list[len(list)-1]
	}

	printMarkdown(renderer.StatsMarkdown(stats))
	return subcommands.ExitSuccess
}
