package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Verbose bool             `help:"Log every engine transition to stderr"`
	NoColor bool             `name:"no-color" help:"Disable colored output"`

	Play     PlayCmd     `cmd:"" help:"Play an HCL scenario and print the final scores"`
	Simulate SimulateCmd `cmd:"" help:"Play many seeded games and report statistics"`
	Deck     DeckCmd     `cmd:"" help:"Print the deck composition and per-player deal"`
	Replay   ReplayCmd   `cmd:"" help:"Verify saved replay logs"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("darkhorse"),
		kong.Description("Rules engine driver for the Dark Horse racing card game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
