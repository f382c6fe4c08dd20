package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Catalog string `short:"c" type:"path" default:"variants.hcl" help:"Path to an HCL variant catalog (built-in catalog when missing)"`
	Debug   bool   `help:"Enable debug logging"`
	NoColor bool   `name:"no-color" help:"Disable styled output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play a game from a command script or standard input"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate random games and check engine invariants"`
	Tables   TablesCmd        `cmd:"" help:"Build the hand ranking tables and print their sizes"`
	Variants VariantsCmd      `cmd:"" help:"List the variants in the catalog"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerrules"),
		kong.Description("Multi-variant poker rules engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
