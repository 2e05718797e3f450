package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/docnav/cli"
	"github.com/grovetools/docnav/errors"
	"github.com/grovetools/docnav/nav"
	"github.com/grovetools/docnav/source"
)

func NewListCmd() *cobra.Command {
	var (
		setName    string
		docVersion string
		resolve    bool
		patterns   []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the entries of a navigation set in order",
		Long: `Print the entries of a navigation set in order.

The set is chosen by --set, or by mapping --version through the version
rules of docnav.yml, or else the configured default set. Duplicate labels
are printed as they are defined.

--match takes .dockerignore-style slug patterns. When every pattern is an
exclusion such as '!eloquent*', all other entries are kept.`,
		Example: `# Entries of the default set
docnav list

# The set used by the 5.2 docs, with links resolved
docnav list --version 5.2 --resolve

# Only the Eloquent pages, without the collections page
docnav list --set 5.3 --match 'eloquent*' --match '!eloquent-collections'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if resolve && docVersion == "" {
				return errors.New(errors.ErrCodeInvalidInput, "--resolve requires --version")
			}

			cfg, cat, logger, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			set, err := source.SelectSet(cat, cfg, setName, docVersion)
			if err != nil {
				return err
			}

			entries := set.Entries()
			if len(patterns) > 0 {
				if entries, err = nav.Filter(entries, patterns); err != nil {
					return err
				}
			}
			if resolve {
				if entries, err = nav.ResolveEntries(entries, docVersion); err != nil {
					return err
				}
			}

			logger.WithField("set", set.Name()).WithField("entries", len(entries)).Debug("Listing navigation entries")

			out := cmd.OutOrStdout()
			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal entries to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			return cli.EntryTable{Styled: styledOutput(cmd)}.Render(out, entries)
		},
	}

	cmd.Flags().StringVarP(&setName, "set", "s", "", "Navigation set name")
	cmd.Flags().StringVar(&docVersion, "version", "", "Documentation version used to pick the set")
	cmd.Flags().BoolVarP(&resolve, "resolve", "r", false, "Substitute --version into the links")
	cmd.Flags().StringArrayVarP(&patterns, "match", "m", nil, "Slug pattern; prefix with ! to exclude (repeatable)")

	return cmd
}
