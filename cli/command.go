package cli

import (
	"github.com/grovetools/zism/config"
	"github.com/grovetools/zism/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandOptions holds the options shared by every zism command
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with the standard zism flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to zism config file (zism.yml or zism.toml)")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger returns the component logger, raised to debug when --verbose is set.
func GetLogger(cmd *cobra.Command) *logrus.Entry {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logging.SetVerbose(true)
	}
	return logging.NewLogger("cli")
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

// LoadConfig loads the file named by --config, or the default config file.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.LoadFile(GetOptions(cmd).ConfigFile)
}
