package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/docnav/config"
	"github.com/grovetools/docnav/errors"
	"github.com/grovetools/docnav/schema"
)

func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema [nav|config]",
		Short:     "Print the JSON Schema for navigation documents or docnav.yml",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"nav", "config"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "nav"
			if len(args) == 1 {
				kind = args[0]
			}

			var (
				data []byte
				err  error
			)
			switch kind {
			case "nav":
				data, err = schema.GenerateNavDocument()
			case "config":
				data, err = config.GenerateSchema()
			default:
				return errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("unknown schema %q, expected nav or config", kind))
			}
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "failed to generate schema")
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
