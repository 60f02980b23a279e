package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/moshav/deliveries"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verify the store's invariants without changing it" }
func (*checkCmd) Usage() string {
	return `dlvr check

  Audits the store: delivery numbers must be unique, every line total
  must equal qty times price, and every delivery total must match its
  lines. Reports every violation found; changes nothing.
`
}

func (*checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	list, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	problems := deliveries.Check(list)
	for _, p := range problems {
		fmt.Fprintln(os.Stderr, p)
	}
	if len(problems) > 0 {
		fmt.Fprintf(os.Stderr, "%d problem(s) found in %d deliveries\n", len(problems), len(list))
		return subcommands.ExitFailure
	}
	fmt.Printf("Store is consistent: %d deliveries\n", len(list))
	return subcommands.ExitSuccess
}

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the store in canonical form" }
func (*fmtCmd) Usage() string {
	return `dlvr fmt

  Rewrites the store canonically: derived fields recomputed from
  quantities and prices, deliveries sorted ascending by number.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	list, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	canonical := deliveries.Canonicalize(list)
	if err := deliveries.Save(storePath(), canonical); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted %d deliveries\n", len(canonical))
	return subcommands.ExitSuccess
}
