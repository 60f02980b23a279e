package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/moshav/deliveries/pdf"
)

// receiptCmd holds the flags for the 'receipt' subcommand.
type receiptCmd struct {
	number int
	output string
}

func (*receiptCmd) Name() string     { return "receipt" }
func (*receiptCmd) Synopsis() string { return "export a PDF receipt for one delivery" }
func (*receiptCmd) Usage() string {
	return `dlvr receipt -n <number> [-o <file>]

  Writes the receipt for one delivery: header block, every line with a
  nonzero quantity or price, and a generation timestamp. Omitting -n
  selects the most recently appended delivery.
`
}

func (c *receiptCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.number, "n", 0, "Delivery number, defaults to the latest delivery.")
	f.StringVar(&c.output, "o", "", "Output file, defaults to receipt_delivery_<number>.pdf.")
}

func (c *receiptCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	list, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(list) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no deliveries saved yet")
		return subcommands.ExitFailure
	}

	target := list[len(list)-1]
	if c.number != 0 {
		found := false
		for _, d := range list {
			if d.DeliveryNumber == c.number {
				target, found = d, true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "Error: no delivery #%d in the store\n", c.number)
			return subcommands.ExitFailure
		}
	}

	var buf bytes.Buffer
	exporter := pdf.NewExporter(currency(), clock)
	if err := exporter.Receipt(&buf, target); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering receipt: %v\n", err)
		return subcommands.ExitFailure
	}

	output := c.output
	if output == "" {
		output = fmt.Sprintf("receipt_delivery_%d.pdf", target.DeliveryNumber)
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote receipt for delivery #%d to %s\n", target.DeliveryNumber, output)
	return subcommands.ExitSuccess
}
