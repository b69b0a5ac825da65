package spotify

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	client "github.com/spotgrab/spotify-grabber/internal/client/spotify"
	mock_spotify_client "github.com/spotgrab/spotify-grabber/internal/client/spotify/mocks"
	"github.com/spotgrab/spotify-grabber/internal/config"
)

const testTrackID = "6rqhFgbbKwnb9MLmUQDhG6"

func newFetchResult(payload []byte, totalBytes int64) *client.FetchTrackResult {
	return &client.FetchTrackResult{
		Body:       io.NopCloser(bytes.NewReader(payload)),
		TotalBytes: totalBytes,
	}
}

func TestDownload_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_spotify_client.NewMockClient(ctrl)
	tempDir := t.TempDir()

	testConfig := &config.Config{
		OutputPath:    tempDir,
		ReplaceTracks: true,
	}

	payload := []byte("complete audio file content")
	mockClient.EXPECT().
		StreamTrack(gomock.Any(), testTrackID, "OGG_VORBIS_320").
		Return(newFetchResult(payload, int64(len(payload))), nil)

	service := NewService(testConfig, mockClient)

	err := service.Download(context.Background(), testTrackID, tempDir, true)
	require.NoError(t, err)

	trackPath := filepath.Join(tempDir, testTrackID+".ogg")
	content, err := os.ReadFile(trackPath)
	require.NoError(t, err)
	assert.Equal(t, payload, content)

	// The temporary file must be gone after a successful download.
	_, err = os.Stat(trackPath + ".part")
	assert.True(t, os.IsNotExist(err))
}

func TestDownload_QualitySelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		premium         bool
		expectedQuality string
	}{
		{
			name:            "premium requests very high quality",
			premium:         true,
			expectedQuality: "OGG_VORBIS_320",
		},
		{
			name:            "non-premium requests high quality",
			premium:         false,
			expectedQuality: "OGG_VORBIS_160",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mock_spotify_client.NewMockClient(ctrl)
			tempDir := t.TempDir()

			payload := []byte("audio")
			mockClient.EXPECT().
				StreamTrack(gomock.Any(), testTrackID, tt.expectedQuality).
				Return(newFetchResult(payload, int64(len(payload))), nil)

			service := NewService(&config.Config{ReplaceTracks: true}, mockClient)

			err := service.Download(context.Background(), testTrackID, tempDir, tt.premium)
			require.NoError(t, err)
		})
	}
}

func TestDownload_OverwritesExisting(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_spotify_client.NewMockClient(ctrl)
	tempDir := t.TempDir()

	trackPath := filepath.Join(tempDir, testTrackID+".ogg")
	require.NoError(t, os.WriteFile(trackPath, []byte("old content"), 0o644))

	payload := []byte("new content")
	mockClient.EXPECT().
		StreamTrack(gomock.Any(), testTrackID, gomock.Any()).
		Return(newFetchResult(payload, int64(len(payload))), nil)

	service := NewService(&config.Config{ReplaceTracks: true}, mockClient)

	err := service.Download(context.Background(), testTrackID, tempDir, true)
	require.NoError(t, err)

	content, err := os.ReadFile(trackPath)
	require.NoError(t, err)
	assert.Equal(t, payload, content)
}

func TestDownload_SkipsExistingWhenReplaceDisabled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No StreamTrack expectation: the client must not be contacted.
	mockClient := mock_spotify_client.NewMockClient(ctrl)
	tempDir := t.TempDir()

	trackPath := filepath.Join(tempDir, testTrackID+".ogg")
	require.NoError(t, os.WriteFile(trackPath, []byte("existing content"), 0o644))

	service := NewService(&config.Config{ReplaceTracks: false}, mockClient)

	err := service.Download(context.Background(), testTrackID, tempDir, true)
	require.NoError(t, err)

	content, err := os.ReadFile(trackPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("existing content"), content)
}

func TestDownload_InvalidTrackID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_spotify_client.NewMockClient(ctrl)
	service := NewService(&config.Config{ReplaceTracks: true}, mockClient)

	tests := []string{
		"",
		"not a track id!",
		"6rqhFgbbKwnb9MLmUQDhG6x", // 23 characters
	}

	for _, trackID := range tests {
		err := service.Download(context.Background(), trackID, t.TempDir(), true)
		require.ErrorIs(t, err, ErrInvalidTrackID, "trackID: %q", trackID)
	}
}

func TestDownload_StreamError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_spotify_client.NewMockClient(ctrl)
	tempDir := t.TempDir()

	mockClient.EXPECT().
		StreamTrack(gomock.Any(), testTrackID, gomock.Any()).
		Return(nil, client.ErrStreamUnavailable)

	service := NewService(&config.Config{ReplaceTracks: true}, mockClient)

	err := service.Download(context.Background(), testTrackID, tempDir, true)
	require.ErrorIs(t, err, client.ErrStreamUnavailable)

	// Neither the final file nor a .part file should exist.
	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDownload_IncompleteStreamLeavesNoPartFile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_spotify_client.NewMockClient(ctrl)
	tempDir := t.TempDir()

	// The backend announces more bytes than the body delivers.
	payload := []byte("truncated")
	mockClient.EXPECT().
		StreamTrack(gomock.Any(), testTrackID, gomock.Any()).
		Return(newFetchResult(payload, int64(len(payload))+100), nil)

	service := NewService(&config.Config{ReplaceTracks: true}, mockClient)

	err := service.Download(context.Background(), testTrackID, tempDir, true)
	require.ErrorIs(t, err, ErrIncompleteDownload)

	// Wait for the deferred cleanup delay before checking.
	time.Sleep(50 * time.Millisecond)

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDownload_UnknownTotalBytesAccepted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_spotify_client.NewMockClient(ctrl)
	tempDir := t.TempDir()

	payload := []byte("stream without content length")
	mockClient.EXPECT().
		StreamTrack(gomock.Any(), testTrackID, gomock.Any()).
		Return(newFetchResult(payload, -1), nil)

	service := NewService(&config.Config{ReplaceTracks: true}, mockClient)

	err := service.Download(context.Background(), testTrackID, tempDir, true)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(tempDir, testTrackID+".ogg"))
	require.NoError(t, err)
	assert.Equal(t, payload, content)
}

func TestDownloadTracks_RecordsStatistics(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_spotify_client.NewMockClient(ctrl)
	tempDir := t.TempDir()

	testConfig := &config.Config{
		OutputPath:    tempDir,
		Premium:       true,
		ReplaceTracks: true,
	}

	// Metadata lookups are best-effort and may fail without affecting downloads.
	mockClient.EXPECT().
		GetTrackMetadata(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("metadata unavailable")).
		AnyTimes()

	payload := []byte("audio payload")
	mockClient.EXPECT().
		StreamTrack(gomock.Any(), testTrackID, "OGG_VORBIS_320").
		Return(newFetchResult(payload, int64(len(payload))), nil)

	secondTrackID := "3RE1A7S4aBqPIzLe53Q6VF"
	mockClient.EXPECT().
		StreamTrack(gomock.Any(), secondTrackID, "OGG_VORBIS_320").
		Return(nil, client.ErrStreamUnavailable)

	service := NewService(testConfig, mockClient)
	impl, ok := service.(*ServiceImpl)
	require.True(t, ok)

	service.DownloadTracks(context.Background(), []string{testTrackID, secondTrackID})

	assert.Equal(t, int64(1), impl.stats.TracksDownloaded)
	assert.Equal(t, int64(1), impl.stats.TracksFailed)
	assert.Equal(t, int64(len(payload)), impl.stats.TotalBytesDownloaded)
	require.Len(t, impl.stats.Errors, 1)
	assert.Equal(t, secondTrackID, impl.stats.Errors[0].TrackID)

	// The summary must not panic after a mixed run.
	service.PrintDownloadSummary(context.Background())
}

func TestDownloadTracks_StopsOnCanceledContext(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: a canceled context must prevent any client calls.
	mockClient := mock_spotify_client.NewMockClient(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service := NewService(&config.Config{ReplaceTracks: true}, mockClient)
	service.DownloadTracks(ctx, []string{testTrackID})
}
