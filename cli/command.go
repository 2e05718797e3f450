// Package cli holds the cobra scaffolding shared by docnav commands.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/docnav/config"
	"github.com/grovetools/docnav/errors"
	"github.com/grovetools/docnav/logging"
)

// CommandOptions holds common options for docnav commands
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with the standard docnav flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to docnav.yml config file")

	SetStyledHelp(cmd)

	return cmd
}

// Execute runs root and reports a failure on its error writer. Errors with
// a docnav code get the ErrorHandler hint; the rest, such as flag and
// argument errors from cobra, are printed with a pointer to --help.
func Execute(root *cobra.Command) error {
	cmd, err := root.ExecuteC()
	if err == nil {
		return nil
	}

	if errors.GetCode(err) == "" {
		PrintError(cmd, err)
		return err
	}

	verbose, _ := root.PersistentFlags().GetBool("verbose")
	h := NewErrorHandler(verbose)
	h.Out = root.ErrOrStderr()
	return h.Handle(err)
}

// NewCommandLogger builds the docnav logger for cmd from cfg. Structured
// output goes to the command's error writer; --verbose forces debug level.
func NewCommandLogger(cmd *cobra.Command, cfg *config.Config) *logrus.Entry {
	sink := cmd.ErrOrStderr()
	entry := logging.NewFromConfig("docnav", cfg, sink)

	if GetOptions(cmd).Verbose {
		entry.Logger.SetLevel(logrus.DebugLevel)
		if entry.Logger.Out == io.Discard {
			entry.Logger.SetOutput(sink)
		}
	}
	return entry
}

// LoadConfig loads the --config file when given, otherwise the layered
// configuration around the file InitConfig finds. With no configuration
// file at all the defaults apply.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	opts := GetOptions(cmd)

	path, err := InitConfig(opts.ConfigFile)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to locate configuration")
	}
	if path == "" {
		return config.Default(), nil
	}
	if opts.ConfigFile != "" {
		return config.Load(path)
	}
	return config.LoadFrom(filepath.Dir(path))
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// InitConfig returns the configuration file path: the flag value when set,
// otherwise the file config.FindConfigFile locates. An empty path means no
// configuration file exists.
func InitConfig(configFile string) (string, error) {
	if configFile != "" {
		return configFile, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	foundConfigFile, err := config.FindConfigFile(cwd)
	if err != nil {
		// No config file found, that's okay: defaults apply
		return "", nil
	}

	return foundConfigFile, nil
}
