package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/grovetools/docnav/cli"
)

// SetInfo summarises one registered navigation set.
type SetInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Entries     int    `json:"entries"`
	Origin      string `json:"origin"`
	Default     bool   `json:"default"`
}

func NewSetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sets",
		Short: "List the registered navigation sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cat, _, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			var infos []SetInfo
			for _, s := range cat.Sets() {
				infos = append(infos, SetInfo{
					Name:        s.Name(),
					Description: s.Description(),
					Entries:     s.Len(),
					Origin:      s.Origin(),
					Default:     s.Name() == cfg.DefaultSet,
				})
			}

			out := cmd.OutOrStdout()
			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal sets to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			rows := make([][]string, len(infos))
			for i, info := range infos {
				name := info.Name
				if info.Default {
					name += " *"
				}
				rows[i] = []string{name, strconv.Itoa(info.Entries), info.Origin}
			}
			return cli.RenderTable(out, []string{"SET", "ENTRIES", "ORIGIN"}, rows, styledOutput(cmd), nil)
		},
	}
}
