package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/subcommands"

	"github.com/moshav/deliveries"
)

// cellsFlag collects repeated -cell flags into raw form cell inputs.
type cellsFlag struct {
	cells map[deliveries.CellKey]deliveries.CellInput
}

func (c *cellsFlag) String() string {
	keys := make([]string, 0, len(c.cells))
	for k := range c.cells {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}

// Set parses one cell assignment of the form "item/market=QTY" or
// "item/market=QTYxPRICE". Quantity and price stay raw text here; the form
// validates them so that errors name the failing item and market.
func (c *cellsFlag) Set(v string) error {
	addr, value, ok := strings.Cut(v, "=")
	if !ok {
		return fmt.Errorf("cell %q: want item/market=QTYxPRICE", v)
	}
	item, market, ok := strings.Cut(addr, "/")
	if !ok || item == "" || market == "" {
		return fmt.Errorf("cell %q: want item/market=QTYxPRICE", v)
	}
	qty, price, _ := strings.Cut(value, "x")
	if c.cells == nil {
		c.cells = make(map[deliveries.CellKey]deliveries.CellInput)
	}
	c.cells[deliveries.CellKey{Item: item, Market: market}] = deliveries.CellInput{Qty: qty, Price: price}
	return nil
}

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date   string
	time   string
	driver string
	car    string
	cells  cellsFlag
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record one delivery and append it to the store" }
func (*addCmd) Usage() string {
	return `dlvr add [-d <date>] [-t <time>] [-driver <key>] [-car <key>] [-cell item/market=QTYxPRICE]...

  Records one delivery covering every catalog item on every market. Cells
  not given are saved with zero quantity and price. Date and time default
  to now; driver and car default to unassigned.

Usage Examples:
# 3 crates of tard at 2.50 to the gamshi market, driven by Wael.
$ dlvr add -driver wael -cell tard/gamshi=3x2.50
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Delivery date (YYYY-MM-DD), defaults to today.")
	f.StringVar(&c.time, "t", "", "Delivery time (HH:MM), defaults to now.")
	f.StringVar(&c.driver, "driver", "", "Driver key from the catalog, empty for unassigned.")
	f.StringVar(&c.car, "car", "", "Car key from the catalog, empty for unassigned.")
	f.Var(&c.cells, "cell", "Cell assignment item/market=QTYxPRICE, repeatable.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	form := deliveries.NewForm(activeCatalog(), clock)
	d, err := form.Save(storePath(), deliveries.Input{
		Date:   c.date,
		Time:   c.time,
		Driver: c.driver,
		Car:    c.car,
		Cells:  c.cells.cells,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving delivery: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Saved delivery #%d: qty %d, total %s\n",
		d.DeliveryNumber, d.TotalQty, currency().Format(d.TotalAmount))

	list, err := loadStore()
	if err == nil {
		fmt.Printf("Next delivery number: %d\n", deliveries.NextNumber(list))
	}
	return subcommands.ExitSuccess
}
