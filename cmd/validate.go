package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/grovetools/docnav/cli"
	"github.com/grovetools/docnav/errors"
	"github.com/grovetools/docnav/logging"
	"github.com/grovetools/docnav/nav"
	"github.com/grovetools/docnav/pkg/watch"
	"github.com/grovetools/docnav/source"
)

// target is a navigation document to validate, with the set name it is
// registered under, if any.
type target struct {
	name string
	path string
}

func NewValidateCmd() *cobra.Command {
	var watchFiles bool

	cmd := &cobra.Command{
		Use:   "validate [files...]",
		Short: "Validate navigation documents against the schema",
		Long: `Validate navigation documents against the navigation schema.

Without arguments every source registered in docnav.yml is checked.
With --watch the documents are checked again whenever they change,
until interrupted.`,
		Example: `docnav validate nav/5.5.yml
docnav validate --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil && len(args) == 0 {
				return err
			}
			logger := cli.NewCommandLogger(cmd, cfg)

			var targets []target
			for _, arg := range args {
				targets = append(targets, target{path: arg})
			}
			if len(targets) == 0 {
				for _, src := range cfg.Sources {
					targets = append(targets, target{name: src.Name, path: src.Path})
				}
			}
			if len(targets) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "no navigation documents to validate").
					WithDetail("hint", "pass files or register sources in docnav.yml")
			}

			pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())
			failed := validateTargets(pretty, targets)

			if !watchFiles {
				if failed > 0 {
					return errors.New(errors.ErrCodeSourceInvalid,
						fmt.Sprintf("%d of %d navigation documents are invalid", failed, len(targets)))
				}
				return nil
			}

			byPath := make(map[string]target, len(targets))
			paths := make([]string, 0, len(targets))
			for _, t := range targets {
				byPath[t.path] = t
				paths = append(paths, t.path)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			w, err := watch.New(paths, 0, logger, func(changed []string) {
				var batch []target
				for _, p := range changed {
					batch = append(batch, byPath[p])
				}
				validateTargets(pretty, batch)
			})
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "failed to watch navigation documents")
			}

			pretty.InfoPretty(fmt.Sprintf("Watching %d navigation documents, press Ctrl+C to stop", len(paths)))
			if err := w.Start(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watchFiles, "watch", "w", false, "Validate again whenever a document changes")

	return cmd
}

// validateTargets reports each target and returns the number that failed.
// A valid document named like a built-in set gets a warning, since loading
// it as a source replaces that set.
func validateTargets(pretty *logging.PrettyLogger, targets []target) int {
	builtin, _ := nav.Builtin()

	failed := 0
	for _, t := range targets {
		set, err := source.Load(t.name, t.path)
		if err != nil {
			failed++
			pretty.ErrorPretty(t.path, err)
			continue
		}
		pretty.Success(fmt.Sprintf("%s: set %q, %d entries", t.path, set.Name(), set.Len()))

		if builtin != nil {
			if _, err := builtin.Set(set.Name()); err == nil {
				pretty.WarnPretty(fmt.Sprintf("%s: set %q replaces the built-in set of that name", t.path, set.Name()))
			}
		}
	}
	return failed
}
