package cmd

import (
	"github.com/spf13/cobra"

	"github.com/spotgrab/spotify-grabber/internal/app"
	"github.com/spotgrab/spotify-grabber/internal/config"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
		Long: `Manage the application configuration.

Use 'config init' to create a configuration file with default values.`,
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	configInitCmd = &cobra.Command{
		Use:   "init [path]",
		Short: "Create a configuration file with default values",
		Long: `Creates a configuration file with default values at the given path.

When no path is given, the file is written to '` + config.DefaultConfigFilename + `'
in the current directory. An existing file is never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		// Writing the initial file must work without an existing configuration.
		PersistentPreRun: func(_ *cobra.Command, _ []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			path := config.DefaultConfigFilename
			if len(args) > 0 {
				path = args[0]
			}

			app.ExecuteConfigInitCommand(cmd.Context(), path)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
