package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/docnav/errors"
	"github.com/grovetools/docnav/nav"
	"github.com/grovetools/docnav/pkg/format"
	"github.com/grovetools/docnav/source"
)

func NewExportCmd() *cobra.Command {
	var (
		setName    string
		docVersion string
		formatName string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a navigation set as a YAML, JSON or TOML document",
		Long: `Write a navigation set as a document.

Without --version the links keep the {{version}} placeholder and the output
is a valid navigation document that can be registered as a source. With
--version the links are resolved for that documentation version.`,
		Example: `docnav export --set 5.1 --format json
docnav export --version 5.3 --format toml > nav.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := format.Parse(formatName)
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInvalidInput, "unsupported export format").
					WithDetail("format", formatName)
			}

			cfg, cat, _, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			set, err := source.SelectSet(cat, cfg, setName, docVersion)
			if err != nil {
				return err
			}

			doc := set.Document()
			if docVersion != "" {
				resolved, err := nav.ResolveEntries(doc.Entries, docVersion)
				if err != nil {
					return err
				}
				doc.Entries = resolved
			}

			data, err := format.Encode(doc, f)
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "failed to encode navigation document")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&setName, "set", "s", "", "Navigation set name")
	cmd.Flags().StringVar(&docVersion, "version", "", "Documentation version used to pick the set and resolve links")
	cmd.Flags().StringVarP(&formatName, "format", "f", string(format.YAML), "Output format: yaml, json, toml")

	return cmd
}
