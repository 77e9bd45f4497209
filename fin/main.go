package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Gu-Fernandes/finances-sub000/cmd"
)

var verbose = flag.Bool("v", false, "Trace silent recoveries (fallback to defaults, persistence failures)")

func main() {
	// Optional: a .env file can set FIN_HOME and FIN_VERBOSE.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(subcommands.HelpCommand(), "help")
	commander.Register(subcommands.FlagsCommand(), "help")
	commander.Register(subcommands.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()

	if *verbose || os.Getenv("FIN_VERBOSE") != "" {
		cmd.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	os.Exit(int(commander.Execute(context.Background())))
}
