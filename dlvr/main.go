package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/moshav/deliveries/cmd"
)

func main() {
	// Optional .env can set DELIVERIES_FILE and CURRENCY.
	_ = godotenv.Load()

	cmd.Complete()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
