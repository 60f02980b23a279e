package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/moshav/deliveries"
)

// wipeCmd holds the flags for the 'wipe' subcommand.
type wipeCmd struct {
	yes bool
}

func (*wipeCmd) Name() string     { return "wipe" }
func (*wipeCmd) Synopsis() string { return "irreversibly delete all saved deliveries" }
func (*wipeCmd) Usage() string {
	return `dlvr wipe -yes

  Deletes every saved delivery. There is no undo; the command refuses to
  run without the explicit -yes confirmation and leaves the store
  untouched. The next delivery number resets to 1.
`
}

func (c *wipeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Confirm deleting ALL saved deliveries.")
}

func (c *wipeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(os.Stderr, "Refusing to delete all deliveries without -yes; store left untouched.")
		return subcommands.ExitUsageError
	}
	if err := deliveries.Wipe(storePath()); err != nil {
		fmt.Fprintf(os.Stderr, "Error wiping store: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Deleted all deliveries. Next delivery number: 1")
	return subcommands.ExitSuccess
}
