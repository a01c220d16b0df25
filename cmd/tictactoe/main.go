package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play an interactive game (the default)"`
	Simulate SimulateCmd      `cmd:"" help:"Pit two computer players against each other"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tictactoe"),
		kong.Description("Tic-tac-toe on the command line, with an unbeatable alpha-beta bot"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
