package main

import (
	"os"

	"github.com/grovetools/docnav/cli"
	"github.com/grovetools/docnav/cmd"
	"github.com/grovetools/docnav/tui/theme"
)

func main() {
	theme.InitializeColor()

	if err := cli.Execute(cmd.NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
