package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/moshav/deliveries"
	"github.com/moshav/deliveries/date"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the full store to a JSON file" }
func (*exportCmd) Usage() string {
	return `dlvr export [-o <file>]

  Writes the whole store, unfiltered, to a JSON file named after today's
  date. The store itself is not changed.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, defaults to deliveries_<today>.json.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	list, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	output := c.output
	if output == "" {
		output = fmt.Sprintf("deliveries_%s.json", date.Of(clock()))
	}

	file, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := deliveries.ExportDeliveries(file, list); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting to %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d deliveries to %s\n", len(list), output)
	return subcommands.ExitSuccess
}

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge a JSON export file into the store" }
func (*importCmd) Usage() string {
	return `dlvr import <file.json>

  Merges the deliveries of an export file into the store, keyed by
  delivery number with the imported record winning on conflict. The
  result is sorted by number. A malformed file aborts the whole import.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import takes exactly one file argument")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	incoming, err := deliveries.ImportDeliveries(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	current, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	merged := deliveries.Merge(current, incoming)
	if err := deliveries.Save(storePath(), merged); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported and merged %d records, store now has %d deliveries\n", len(incoming), len(merged))
	fmt.Printf("Next delivery number: %d\n", deliveries.NextNumber(merged))
	return subcommands.ExitSuccess
}
