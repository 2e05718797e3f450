// Package cmd implements the docnav subcommands.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grovetools/docnav/cli"
	"github.com/grovetools/docnav/config"
	"github.com/grovetools/docnav/nav"
	"github.com/grovetools/docnav/source"
	"github.com/grovetools/docnav/version"
)

// NewRootCmd builds the docnav command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"docnav",
		"Navigation sets for the translated framework documentation",
	)
	rootCmd.Long = `Navigation sets for the translated framework documentation.

Every set is an ordered list of menu entries. Each entry has a text label
and a link template of the form /docs/{{version}}/<slug>. Two sets are
built in; docnav.yml maps documentation versions to sets and registers
additional sets stored on disk.`
	cli.SetVersionTemplate(rootCmd, version.GetInfo())

	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewSetsCmd())
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewExportCmd())
	rootCmd.AddCommand(NewSchemaCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("docnav"))

	return rootCmd
}

// loadCatalog loads the configuration once, builds the command logger from
// it and returns the catalog the configuration describes.
func loadCatalog(cmd *cobra.Command) (*config.Config, *nav.Catalog, *logrus.Entry, error) {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := cli.NewCommandLogger(cmd, cfg)

	cat, err := source.LoadCatalog(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, cat, logger, nil
}

// styledOutput reports whether cmd writes to an interactive terminal.
func styledOutput(cmd *cobra.Command) bool {
	return cmd.OutOrStdout() == os.Stdout && term.IsTerminal(int(os.Stdout.Fd()))
}
