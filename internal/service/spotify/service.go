package spotify

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/spotgrab/spotify-grabber/internal/client/spotify"
	"github.com/spotgrab/spotify-grabber/internal/codec"
	"github.com/spotgrab/spotify-grabber/internal/config"
	"github.com/spotgrab/spotify-grabber/internal/logger"
	"github.com/spotgrab/spotify-grabber/internal/utils"
)

// Service provides methods for downloading tracks through an authenticated session.
type Service interface {
	// Download fetches a single track and persists it to {directory}/{trackID}.ogg.
	Download(ctx context.Context, trackID, directory string, premium bool) error
	// DownloadTracks downloads the given track IDs one by one into the configured output path.
	DownloadTracks(ctx context.Context, trackIDs []string)
	// AuthHeaders returns the headers for authenticated requests against the web API.
	AuthHeaders() map[string]string
	// PrintDownloadSummary prints a formatted summary of download statistics.
	PrintDownloadSummary(ctx context.Context)
}

// ServiceImpl implements the track download service.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// client is the authenticated session to the streaming backend.
	client spotify.Client
	// stats tracks download statistics for the current session.
	stats *DownloadStatistics
	// statsMutex protects concurrent access to statistics.
	statsMutex *sync.Mutex
}

// NewService creates a download service instance with dependency-injected components.
func NewService(cfg *config.Config, client spotify.Client) Service {
	return &ServiceImpl{
		cfg:        cfg,
		client:     client,
		stats:      new(DownloadStatistics),
		statsMutex: new(sync.Mutex),
	}
}

// AuthHeaders returns the headers for authenticated requests against the web API.
// The Authorization value is fixed for the client's lifetime: tokens are
// minted once per session and never refreshed here.
func (s *ServiceImpl) AuthHeaders() map[string]string {
	return map[string]string{
		"Authorization":   "Bearer " + s.client.AccessToken(),
		"Accept-Language": "en",
		"Accept":          "application/json",
	}
}

// DownloadTracks downloads the given track IDs one by one into the configured output path.
// Downloads are strictly sequential: each track either completes or fails
// before the next one starts.
func (s *ServiceImpl) DownloadTracks(ctx context.Context, trackIDs []string) {
	s.statsMutex.Lock()
	s.stats.StartTime = time.Now()
	s.statsMutex.Unlock()

	total := len(trackIDs)

	for index, trackID := range trackIDs {
		// Stop immediately when the context is canceled (CTRL+C pressed).
		select {
		case <-ctx.Done():
			return
		default:
		}

		logger.Infof(ctx, "Downloading track %s (%d / %d)", trackID, index+1, total)

		s.logTrackDescription(ctx, trackID)

		if err := s.Download(ctx, trackID, s.cfg.OutputPath, s.cfg.Premium); err != nil {
			logger.Errorf(ctx, "Failed to download track '%s': %v", trackID, err)
			s.recordError(trackID, "downloading track", err)
		}

		// Add a random pause between downloads to avoid rate limiting.
		if index+1 < total && s.cfg.ParsedMaxDownloadPause > 0 {
			utils.RandomPause(0, s.cfg.ParsedMaxDownloadPause)
		}
	}

	s.statsMutex.Lock()
	s.stats.EndTime = time.Now()
	s.statsMutex.Unlock()
}

// PrintDownloadSummary prints a formatted summary of download statistics.
func (s *ServiceImpl) PrintDownloadSummary(ctx context.Context) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	elapsed := s.stats.EndTime.Sub(s.stats.StartTime).Round(time.Second)

	logger.Infof(ctx, "Downloaded: %d, skipped: %d, failed: %d, total size: %s, elapsed: %s",
		s.stats.TracksDownloaded,
		s.stats.TracksSkipped,
		s.stats.TracksFailed,
		humanize.Bytes(uint64(max(s.stats.TotalBytesDownloaded, 0))), //nolint:gosec // Negative totals are clamped.
		elapsed)

	for _, downloadError := range s.stats.Errors {
		logger.Errorf(ctx, "Track '%s' failed while %s: %s",
			downloadError.TrackID, downloadError.Phase, downloadError.ErrorMessage)
	}
}

// logTrackDescription fetches track metadata for a friendlier log line.
// The metadata endpoint is GID-keyed, so the base62 ID is converted first.
// Metadata failures are not fatal: the download proceeds with the bare ID.
func (s *ServiceImpl) logTrackDescription(ctx context.Context, trackID string) {
	gid, err := codec.TrackIDToGID(trackID)
	if err != nil {
		return
	}

	metadata, err := s.client.GetTrackMetadata(ctx, gid)
	if err != nil {
		logger.Debugf(ctx, "No metadata for track '%s': %v", trackID, err)

		return
	}

	logger.Infof(ctx, "Track: %s - %s (%s)",
		strings.Join(metadata.ArtistNames, ", "), metadata.Name, metadata.AlbumName)
}

// recordError records an error in the statistics.
func (s *ServiceImpl) recordError(trackID, phase string, err error) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.TracksFailed++
	s.stats.Errors = append(s.stats.Errors, DownloadError{
		TrackID:      trackID,
		Phase:        phase,
		ErrorMessage: err.Error(),
	})
}

func (s *ServiceImpl) incrementDownloaded(bytesDownloaded int64) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.TracksDownloaded++
	s.stats.TotalBytesDownloaded += bytesDownloaded
}

func (s *ServiceImpl) incrementSkipped() {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.TracksSkipped++
}
