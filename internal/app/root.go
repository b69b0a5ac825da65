package app

import (
	"context"

	spotify_client "github.com/spotgrab/spotify-grabber/internal/client/spotify"
	"github.com/spotgrab/spotify-grabber/internal/config"
	"github.com/spotgrab/spotify-grabber/internal/logger"
	spotify_service "github.com/spotgrab/spotify-grabber/internal/service/spotify"
)

// ExecuteRootCommand is the entry point for the application.
// It logs in to the streaming service, sets up the download service,
// and starts the download process for the provided arguments.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, args []string) {
	client, err := spotify_client.NewClient(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to authenticate: %v", err)
	}

	idProcessor := spotify_service.NewIDProcessor()

	trackIDs, err := idProcessor.ExtractTrackIDs(ctx, args)
	if err != nil {
		logger.Fatalf(ctx, "Failed to process arguments: %v", err)
	}

	if len(trackIDs) == 0 {
		logger.Fatal(ctx, "No track IDs found in the provided arguments")
	}

	s := spotify_service.NewService(cfg, client)

	// Ensure statistics are ALWAYS printed, even on panic or os.Exit bypass.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered: %v", r)
		}

		s.PrintDownloadSummary(ctx)
	}()

	s.DownloadTracks(ctx, trackIDs)
}
