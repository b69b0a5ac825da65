package spotify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/spotgrab/spotify-grabber/internal/codec"
	"github.com/spotgrab/spotify-grabber/internal/constants"
	"github.com/spotgrab/spotify-grabber/internal/logger"
)

// overwriteFileOptions are the file options for overwriting an existing file.
const overwriteFileOptions = os.O_CREATE | os.O_TRUNC | os.O_WRONLY

// Download fetches a single track and persists it to {directory}/{trackID}.ogg.
// The stream is written to a temporary .part file and renamed into place only
// after the full payload arrived, so the destination either keeps its previous
// content or is replaced whole; a failed download leaves no partial file.
func (s *ServiceImpl) Download(ctx context.Context, trackID, directory string, premium bool) error {
	if !codec.IsTrackID(trackID) {
		return fmt.Errorf("%w: %q", ErrInvalidTrackID, trackID)
	}

	if err := os.MkdirAll(directory, constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	trackPath := filepath.Join(directory, trackID+constants.ExtensionOGG)

	// Skipping existing files is an opt-in: by default the file is replaced.
	if !s.cfg.ReplaceTracks {
		if _, err := os.Stat(trackPath); err == nil {
			logger.Infof(ctx, "Track '%s' already exists, skipping download", trackPath)
			s.incrementSkipped()

			return nil
		}
	}

	quality := QualityForPremium(premium)
	logger.Debugf(ctx, "Requesting track '%s' at %s quality", trackID, quality)

	fetchResult, err := s.client.StreamTrack(ctx, trackID, quality.StreamFormat())
	if err != nil {
		return fmt.Errorf("failed to open stream: %w", err)
	}

	defer fetchResult.Body.Close() //nolint:errcheck // Error on close is not critical here.

	tempFilePath := trackPath + constants.ExtensionPart

	bytesWritten, err := s.saveStreamToFile(ctx, fetchResult.Body, fetchResult.TotalBytes, tempFilePath)
	if err != nil {
		return err
	}

	// Atomically rename the .part file to its final name.
	// This ensures the destination never contains a partial download.
	if err = os.Rename(tempFilePath, trackPath); err != nil {
		if removeErr := os.Remove(tempFilePath); removeErr != nil && !os.IsNotExist(removeErr) {
			logger.Warnf(ctx, "Failed to clean up temporary file '%s': %v", tempFilePath, removeErr)
		}

		return fmt.Errorf("failed to finalize file: %w", err)
	}

	s.incrementDownloaded(bytesWritten)
	logger.Infof(ctx, "Saved track to '%s'", trackPath)

	return nil
}

// saveStreamToFile writes the stream to the temporary file and verifies its size.
// On any failure the temporary file is removed before returning.
func (s *ServiceImpl) saveStreamToFile(
	ctx context.Context,
	stream io.Reader,
	totalBytes int64,
	tempFilePath string,
) (int64, error) {
	// Always overwrite .part files (they indicate incomplete downloads).
	file, err := os.OpenFile(filepath.Clean(tempFilePath), overwriteFileOptions, constants.DefaultFilePermissions)
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary file: %w", err)
	}

	// Track whether the download succeeded.
	// If not, the .part file is removed on function exit.
	var downloadSucceeded bool

	defer func() {
		closeErr := file.Close()

		if !downloadSucceeded {
			// Small delay to ensure the file handle is released (Windows needs this).
			time.Sleep(10 * time.Millisecond)

			if removeErr := os.Remove(tempFilePath); removeErr != nil && !os.IsNotExist(removeErr) {
				logger.Warnf(ctx, "Failed to clean up temporary file '%s': %v (close error: %v)",
					tempFilePath, removeErr, closeErr)
			}
		}
	}()

	bytesWritten, err := s.copyStream(file, stream, totalBytes)
	if err != nil {
		return 0, fmt.Errorf("failed to write file: %w", err)
	}

	// Verify that the expected number of bytes arrived.
	// A negative total means the backend did not announce a length.
	if totalBytes >= 0 && bytesWritten != totalBytes {
		return 0, fmt.Errorf("%w: wrote %d bytes, expected %d bytes",
			ErrIncompleteDownload, bytesWritten, totalBytes)
	}

	downloadSucceeded = true

	return bytesWritten, nil
}

// copyStream copies the stream into the file, with a progress bar at info
// level and optional speed limiting.
func (s *ServiceImpl) copyStream(file io.Writer, stream io.Reader, totalBytes int64) (int64, error) {
	var writer io.Writer = file

	if logger.Level() <= zap.InfoLevel {
		bar := progressbar.DefaultBytes(
			totalBytes,
			"Downloading",
		)

		writer = io.MultiWriter(file, bar)
	}

	if s.cfg.ParsedDownloadSpeedLimit == 0 {
		return io.Copy(writer, stream)
	}

	var bytesWritten int64

	for {
		n, err := io.CopyN(writer, stream, s.cfg.ParsedDownloadSpeedLimit)
		bytesWritten += n

		if errors.Is(err, io.EOF) {
			return bytesWritten, nil
		}

		if err != nil {
			return bytesWritten, err
		}

		// Throttle to respect the speed limit.
		time.Sleep(time.Second)
	}
}
