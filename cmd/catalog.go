package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/moshav/deliveries/renderer"
)

// catalogCmd holds the flags for the 'catalog' subcommand.
type catalogCmd struct{}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "display the active item, market, driver and car catalogs" }
func (*catalogCmd) Usage() string {
	return `dlvr catalog

  Displays the keys and labels the add command accepts.
`
}

func (*catalogCmd) SetFlags(f *flag.FlagSet) {}

func (c *catalogCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.CatalogMarkdown(activeCatalog()))
	return subcommands.ExitSuccess
}
