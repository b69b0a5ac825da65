package spotify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualityForPremium(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TrackQualityVeryHigh, QualityForPremium(true))
	assert.Equal(t, TrackQualityHigh, QualityForPremium(false))
}

func TestTrackQualityStreamFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		quality  TrackQuality
		expected string
	}{
		{
			name:     "very high maps to 320 Kbps Vorbis",
			quality:  TrackQualityVeryHigh,
			expected: "OGG_VORBIS_320",
		},
		{
			name:     "high maps to 160 Kbps Vorbis",
			quality:  TrackQualityHigh,
			expected: "OGG_VORBIS_160",
		},
		{
			name:     "unknown falls back to 160 Kbps Vorbis",
			quality:  TrackQualityUnknown,
			expected: "OGG_VORBIS_160",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.quality.StreamFormat())
		})
	}
}

func TestTrackQualityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "high", TrackQualityHigh.String())
	assert.Equal(t, "very high", TrackQualityVeryHigh.String())
	assert.Equal(t, "unknown", TrackQualityUnknown.String())
	assert.Equal(t, "unknown: 99", TrackQuality(99).String())
}
