package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/moshav/deliveries"
	"github.com/moshav/deliveries/pdf"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	from   string
	to     string
	all    bool
	output string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "export a PDF summary report for a date range" }
func (*summaryCmd) Usage() string {
	return `dlvr summary [-from <date>] [-to <date>] [-all] [-o <file>]

  Writes a PDF summary of the deliveries in the range: aggregate totals
  followed by one line per delivery. The default range is the first day
  of the current month through today.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Lower date bound, inclusive. Empty with -to empty selects month-to-date.")
	f.StringVar(&c.to, "to", "", "Upper date bound, inclusive.")
	f.BoolVar(&c.all, "all", false, "Ignore date bounds and report on the whole store.")
	f.StringVar(&c.output, "o", "", "Output file, defaults to deliveries_summary_<from>_<to>.pdf.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	// Render fully in memory so a failed export never leaves a partial file.
	var buf bytes.Buffer
	exporter := pdf.NewExporter(currency(), clock)
	if err := exporter.Summary(&buf, filtered, r); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering summary: %v\n", err)
		return subcommands.ExitFailure
	}

	output := c.output
	if output == "" {
		output = fmt.Sprintf("deliveries_summary_%s.pdf", r.Identifier())
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote summary of %d deliveries to %s\n", len(filtered), output)
	return subcommands.ExitSuccess
}
