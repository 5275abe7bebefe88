package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/vsixbuilder/cmd/vsixbuilder/commands"
	"git.home.luguber.info/inful/vsixbuilder/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("vsixbuilder"),
		kong.Description("Build, version, and package VS Code extensions as VSIX archives."),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("vsixbuilder %s (%s, built %s)", version.Version, version.GitCommit, version.BuildTime)},
	)

	if err := ctx.Run(&commands.Global{}, cli); err != nil {
		fmt.Fprintf(os.Stderr, "vsixbuilder: %v\n", err)
		os.Exit(1)
	}
}
