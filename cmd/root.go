package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spotgrab/spotify-grabber/internal/app"
	"github.com/spotgrab/spotify-grabber/internal/config"
	"github.com/spotgrab/spotify-grabber/internal/logger"
	"github.com/spotgrab/spotify-grabber/internal/version"
)

// dumpConfigEnvVar enables a JSON dump of the effective configuration
// instead of running the download. Used by the end-to-end tests.
const dumpConfigEnvVar = "SPOTIFY_GRABBER_DUMP_CONFIG"

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "spotify-grabber [flags] {track URLs or IDs}",
		Short: "Download tracks from the streaming service as Ogg Vorbis files.",
		Long: `Spotify Grabber is a CLI tool for downloading tracks as untagged Ogg Vorbis files.

Arguments may be given as:
- Share URLs (https://open.spotify.com/track/...)
- Track URIs (spotify:track:...)
- Bare base62 track IDs
- Text files (.txt) listing any of the above, one per line

The application authenticates with the username and password from the
configuration file and saves each track as {output}/{trackID}.ogg.`,
		Version:          version.Full(),
		Args:             cobra.MinimumNArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			if os.Getenv(dumpConfigEnvVar) == "1" {
				dumpConfig(cmd.Context(), appConfig)

				return
			}

			app.ExecuteRootCommand(cmd.Context(), appConfig, args)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags := rootCmd.Flags()

	rootCmdFlags.StringP(
		"output",
		"o",
		"",
		"directory to save downloaded files (the path will be created if it doesn't exist).")

	rootCmdFlags.BoolP(
		"premium",
		"p",
		false,
		"request very high quality streams (premium accounts only).")

	rootCmdFlags.StringP(
		"speed-limit",
		"s",
		"",
		"set download speed limit, for example: 500KB, 1MB, 1.5MB.")

	rootCmdFlags.Bool(
		"fresh-login",
		false,
		"discard persisted credentials and force a clean login.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("premium"); flag != nil && flag.Changed {
		cfg.Premium, _ = flags.GetBool("premium")
	}

	if flag := flags.Lookup("speed-limit"); flag != nil && flag.Changed {
		cfg.DownloadSpeedLimit, _ = flags.GetString("speed-limit")
	}

	if flag := flags.Lookup("fresh-login"); flag != nil && flag.Changed {
		cfg.FreshLogin, _ = flags.GetBool("fresh-login")
	}

	return config.ValidateConfig(cfg)
}

// dumpConfig prints the effective configuration as JSON to stdout.
func dumpConfig(ctx context.Context, cfg *config.Config) {
	dump := struct {
		OutputPath         string `json:"output_path"`
		Premium            bool   `json:"premium"`
		FreshLogin         bool   `json:"fresh_login"`
		DownloadSpeedLimit string `json:"download_speed_limit"`
	}{
		OutputPath:         cfg.OutputPath,
		Premium:            cfg.Premium,
		FreshLogin:         cfg.FreshLogin,
		DownloadSpeedLimit: cfg.DownloadSpeedLimit,
	}

	encoded, err := json.Marshal(dump)
	if err != nil {
		logger.Fatalf(ctx, "Failed to dump configuration: %v", err)
	}

	fmt.Println(string(encoded))
}
