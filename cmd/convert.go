package cmd

import (
	"github.com/spf13/cobra"

	"github.com/spotgrab/spotify-grabber/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	convertCmd = &cobra.Command{
		Use:   "convert [flags] {identifiers}",
		Short: "Convert between base62 track IDs and hex GIDs",
		Long: `Convert identifiers between their two representations.

A track ID is the 22-character base62 string found in share URLs.
A GID is the 32-character lowercase hex string used by the metadata API.

Use --to-gid to convert track IDs into GIDs,
or --to-tid to convert GIDs into track IDs.
With neither flag, the direction is detected from each identifier's shape.`,
		Args: cobra.MinimumNArgs(1),
		// Conversion is offline and must work without a configuration file.
		PersistentPreRun: func(_ *cobra.Command, _ []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			toGID, _ := cmd.Flags().GetBool("to-gid")
			toTID, _ := cmd.Flags().GetBool("to-tid")

			direction := app.ConvertAuto

			switch {
			case toGID:
				direction = app.ConvertToGID
			case toTID:
				direction = app.ConvertToTrackID
			}

			app.ExecuteConvertCommand(cmd.Context(), direction, args)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	convertCmd.Flags().Bool("to-gid", false, "convert base62 track IDs into hex GIDs.")
	convertCmd.Flags().Bool("to-tid", false, "convert hex GIDs into base62 track IDs.")

	convertCmd.MarkFlagsMutuallyExclusive("to-gid", "to-tid")

	rootCmd.AddCommand(convertCmd)
}
