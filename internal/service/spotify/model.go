package spotify

import (
	"fmt"
	"time"
)

// TrackQuality represents the audio quality level.
type TrackQuality uint8

// Enum values for TrackQuality.
const (
	// TrackQualityUnknown represents an unknown or unspecified audio quality.
	TrackQualityUnknown TrackQuality = iota
	// TrackQualityHigh represents Ogg Vorbis at 160 Kbps.
	TrackQualityHigh
	// TrackQualityVeryHigh represents Ogg Vorbis at 320 Kbps.
	TrackQualityVeryHigh
)

// Wire values for the content-feed quality parameter.
const (
	// streamFormatHigh is the content-feed value for high quality.
	streamFormatHigh = "OGG_VORBIS_160"
	// streamFormatVeryHigh is the content-feed value for very high quality.
	streamFormatVeryHigh = "OGG_VORBIS_320"
)

// String returns a human-readable representation of the TrackQuality.
func (tq TrackQuality) String() string {
	switch tq {
	case TrackQualityUnknown:
		return "unknown"
	case TrackQualityHigh:
		return "high"
	case TrackQualityVeryHigh:
		return "very high"
	default:
		return fmt.Sprintf("unknown: %d", tq)
	}
}

// StreamFormat returns the content-feed wire value for the quality.
func (tq TrackQuality) StreamFormat() string {
	if tq == TrackQualityVeryHigh {
		return streamFormatVeryHigh
	}

	return streamFormatHigh
}

// QualityForPremium maps the premium policy flag onto a quality level.
// Non-premium sessions are never silently upgraded.
func QualityForPremium(premium bool) TrackQuality {
	if premium {
		return TrackQualityVeryHigh
	}

	return TrackQualityHigh
}

// DownloadStatistics tracks metrics for a download session.
type DownloadStatistics struct {
	// StartTime is when the download session began.
	StartTime time.Time
	// EndTime is when the download session completed.
	EndTime time.Time
	// TracksDownloaded is the number of tracks successfully downloaded.
	TracksDownloaded int64
	// TracksSkipped is the number of tracks skipped because they already exist.
	TracksSkipped int64
	// TracksFailed is the number of tracks that failed to download.
	TracksFailed int64
	// TotalBytesDownloaded is the total size of downloaded content in bytes.
	TotalBytesDownloaded int64
	// Errors lists all errors encountered during the download process.
	Errors []DownloadError
}

// DownloadError represents a single error that occurred during download.
type DownloadError struct {
	// TrackID is the identifier of the track that failed.
	TrackID string
	// Phase indicates when the error occurred (e.g., "opening stream", "writing file").
	Phase string
	// ErrorMessage is the error message.
	ErrorMessage string
}
