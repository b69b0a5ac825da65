package app

import (
	"context"

	"github.com/spotgrab/spotify-grabber/internal/config"
	"github.com/spotgrab/spotify-grabber/internal/logger"
)

// ExecuteConfigInitCommand writes a configuration file with default values
// to the given path. An existing file is never overwritten.
func ExecuteConfigInitCommand(ctx context.Context, path string) {
	if err := config.WriteDefaultConfig(path); err != nil {
		logger.Fatalf(ctx, "Failed to write configuration file: %v", err)
	}

	logger.Infof(ctx, "Configuration file written to '%s'", path)
	logger.Info(ctx, "Fill in your username and password before the first run.")
}
