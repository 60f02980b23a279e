// Package cmd implements the dlvr CLI: delivery entry, stats, import and
// export, and PDF documents over a local store file.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/moshav/deliveries"
	"github.com/moshav/deliveries/date"
)

// Commands lists every dlvr subcommand. The binary main registers them all.
var Commands = []subcommands.Command{
	&addCmd{},
	&statsCmd{},
	&exportCmd{},
	&importCmd{},
	&wipeCmd{},
	&summaryCmd{},
	&receiptCmd{},
	&checkCmd{},
	&fmtCmd{},
	&catalogCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store", "", "Path to the deliveries store file (defaults to $DELIVERIES_FILE, then deliveries.json)")
var currencyCode = flag.String("currency", "", "ISO currency code for money display (defaults to $CURRENCY, then ILS)")

// clock is replaced in tests to pin "now" defaults.
var clock deliveries.Clock = deliveries.SystemClock

// storePath resolves the store file from the flag, the environment, then
// the built-in default. The environment is read lazily so a .env file
// loaded by main is honored.
func storePath() string {
	if *storeFile != "" {
		return *storeFile
	}
	if env := os.Getenv("DELIVERIES_FILE"); env != "" {
		return env
	}
	return deliveries.DefaultStoreFile
}

func currency() deliveries.Currency {
	code := *currencyCode
	if code == "" {
		code = os.Getenv("CURRENCY")
	}
	return deliveries.NewCurrency(code)
}

func activeCatalog() deliveries.Catalog { return deliveries.DefaultCatalog() }

func loadStore() ([]deliveries.Delivery, error) {
	return deliveries.Load(storePath())
}

// defaultRange is the stats default: first day of the current month
// through today.
func defaultRange() date.Range {
	today := date.Of(clock())
	return date.NewRange(today.StartOfMonth(), today)
}

// parseRange turns the -from/-to/-all flag triple into a date range.
// Leaving both bounds blank selects the default month-to-date range;
// -all selects the fully open range.
func parseRange(from, to string, all bool) (date.Range, error) {
	if all {
		return date.Range{}, nil
	}
	if from == "" && to == "" {
		return defaultRange(), nil
	}
	var r date.Range
	var err error
	if from != "" {
		if r.From, err = date.Parse(from); err != nil {
			return date.Range{}, fmt.Errorf("invalid -from: %w", err)
		}
	}
	if to != "" {
		if r.To, err = date.Parse(to); err != nil {
			return date.Range{}, fmt.Errorf("invalid -to: %w", err)
		}
	}
	return date.NewRange(r.From, r.To), nil
}

// Complete registers shell completion for the dlvr binary and serves a
// completion request if one is in progress.
func Complete() {
	sub := make(map[string]*complete.Command, len(Commands))
	for _, c := range Commands {
		sub[c.Name()] = &complete.Command{}
	}
	root := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"store":    predict.Files("*.json"),
			"currency": predict.Nothing,
		},
	}
	root.Complete("dlvr")
}
