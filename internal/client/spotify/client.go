package spotify

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/spotgrab/spotify-grabber/internal/config"
	"github.com/spotgrab/spotify-grabber/internal/constants"
	"github.com/spotgrab/spotify-grabber/internal/logger"
	http_transport "github.com/spotgrab/spotify-grabber/internal/transport/http"
)

// Client defines the interface for interacting with the streaming backend.
type Client interface {
	// AccessToken returns the bearer token minted when the session was created.
	// The token is never refreshed within a client's lifetime.
	AccessToken() string
	// StreamTrack opens the audio stream for a track at the requested quality.
	StreamTrack(ctx context.Context, trackID, quality string) (*FetchTrackResult, error)
	// GetTrackMetadata retrieves metadata for the track with the given GID.
	GetTrackMetadata(ctx context.Context, gid string) (*TrackMetadata, error)
	// GetBaseURL returns the base URL of the streaming API.
	GetBaseURL() string
}

// ClientImpl implements the Client interface for interacting with the streaming backend.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// baseURL is the base URL for API requests.
	baseURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// deviceID identifies this client installation within the session.
	deviceID string
	// sessionID authenticates requests within the session.
	sessionID string
	// accessToken is the bearer token minted at construction time.
	accessToken string
	// metadataCache caches track metadata to reduce duplicate API calls for the same tracks.
	metadataCache *lru.Cache[string, *TrackMetadata]
}

const (
	// apiSessionURI is the URI path for the session (login) endpoint.
	apiSessionURI = "v1/session"
	// apiTokenURI is the URI path for the token endpoint.
	apiTokenURI = "v1/token"
	// apiStreamURI is the URI path prefix for the content-feed endpoint.
	apiStreamURI = "v1/audio"
	// apiTrackMetadataURI is the URI path prefix for the track metadata endpoint.
	apiTrackMetadataURI = "metadata/4/track"
)

const (
	// sessionIDHeader carries the session identifier on authenticated requests.
	sessionIDHeader = "X-Session-Id"

	// scopeSeparator joins scopes in the token request query.
	scopeSeparator = ","

	// metadataCacheSize defines the maximum number of track metadata entries to cache.
	// Sized to hold every track of a long downloading session.
	metadataCacheSize = 10000
)

// NewClient creates and returns a new instance of ClientImpl.
// Construction performs the full session handshake: login (honoring the
// fresh-login policy for persisted credentials) and token issuance for the
// configured scopes. Any failure along the way is an authentication failure.
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	baseURL, err := url.Parse(cfg.SpotifyBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid host URL: %w", err)
	}

	// Initialize the HTTP client with custom transport and timeout.
	httpClient := &http.Client{
		Transport: http_transport.NewHeaderInjector(
			http_transport.NewLogTransport(http.DefaultTransport, 0),
			map[string]string{"User-Agent": http_transport.DefaultUserAgent}),
		Timeout: http_transport.DefaultTimeout,
	}

	client := &ClientImpl{
		cfg:        cfg,
		baseURL:    baseURL.String(),
		httpClient: httpClient,
		deviceID:   uuid.NewString(),
	}

	client.metadataCache, err = lru.New[string, *TrackMetadata](metadataCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata cache: %w", err)
	}

	if err = client.login(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	if err = client.mintToken(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	return client, nil
}

// AccessToken returns the bearer token minted when the session was created.
func (c *ClientImpl) AccessToken() string {
	return c.accessToken
}

// GetBaseURL returns the base URL of the streaming API.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}

// StreamTrack opens the audio stream for a track at the requested quality.
// The caller owns closing the returned body.
func (c *ClientImpl) StreamTrack(ctx context.Context, trackID, quality string) (*FetchTrackResult, error) {
	route, err := url.JoinPath(c.baseURL, apiStreamURI, trackID)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("quality", quality)
	request.URL.RawQuery = query.Encode()
	request.Header.Set(sessionIDHeader, c.sessionID)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	switch response.StatusCode {
	case http.StatusOK, http.StatusPartialContent:
	case http.StatusForbidden, http.StatusNotFound, http.StatusUnavailableForLegalReasons:
		response.Body.Close() //nolint:errcheck // Error on close is not critical here.

		return nil, fmt.Errorf("%w: track '%s', quality '%s' (status %d)",
			ErrStreamUnavailable, trackID, quality, response.StatusCode)
	default:
		response.Body.Close() //nolint:errcheck // Error on close is not critical here.

		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	return &FetchTrackResult{
		Body:       response.Body,
		TotalBytes: response.ContentLength,
	}, nil
}

// GetTrackMetadata retrieves metadata for the track with the given GID.
// Uses an LRU cache to avoid redundant API calls for the same tracks.
func (c *ClientImpl) GetTrackMetadata(ctx context.Context, gid string) (*TrackMetadata, error) {
	if cached, ok := c.metadataCache.Get(gid); ok {
		logger.Debugf(ctx, "Metadata cache hit for GID: %s", gid)

		return cached, nil
	}

	route, err := url.JoinPath(c.baseURL, apiTrackMetadataURI, gid)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, err
	}

	request.Header.Set(sessionIDHeader, c.sessionID)
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close()

	switch response.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: GID '%s'", ErrTrackMetadataNotFound, gid)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var metadata TrackMetadata
	if err = json.NewDecoder(response.Body).Decode(&metadata); err != nil {
		return nil, err
	}

	c.metadataCache.Add(gid, &metadata)

	return &metadata, nil
}

// login creates the session. When the fresh-login policy is active, any
// persisted credentials are discarded first so the session always starts from
// a clean password login. Otherwise a stored credential is resumed when one
// exists for the configured account.
func (c *ClientImpl) login(ctx context.Context) error {
	payload := loginRequest{
		Username: c.cfg.Username,
		Password: c.cfg.Password,
		DeviceID: c.deviceID,
	}

	if c.cfg.FreshLogin {
		if err := os.Remove(c.cfg.CredentialsPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to discard persisted credentials: %w", err)
		}
	} else if stored := c.readStoredCredentials(ctx); stored != "" {
		payload.Password = ""
		payload.StoredCredential = stored
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	route, err := url.JoinPath(c.baseURL, apiSessionURI)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, route, bytes.NewReader(body))
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var result loginResponse
	if err = json.NewDecoder(response.Body).Decode(&result); err != nil {
		return err
	}

	c.sessionID = result.SessionID

	// Persist the reusable credential for future non-fresh logins.
	// Failure to persist is not fatal: the session itself is established.
	if result.StoredCredential != "" {
		c.writeStoredCredentials(ctx, result.StoredCredential)
	}

	return nil
}

// mintToken obtains a bearer token scoped to the configured scopes.
func (c *ClientImpl) mintToken(ctx context.Context) error {
	route, err := url.JoinPath(c.baseURL, apiTokenURI)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return err
	}

	query := url.Values{}
	query.Set("scope", strings.Join(c.cfg.Scopes, scopeSeparator))
	request.URL.RawQuery = query.Encode()
	request.Header.Set(sessionIDHeader, c.sessionID)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var result tokenResponse
	if err = json.NewDecoder(response.Body).Decode(&result); err != nil {
		return err
	}

	if result.AccessToken == "" {
		return fmt.Errorf("%w: empty access token", ErrUnexpectedHTTPStatus)
	}

	c.accessToken = result.AccessToken

	return nil
}

// readStoredCredentials loads the persisted credential blob for the
// configured account, returning an empty string when there is none.
func (c *ClientImpl) readStoredCredentials(ctx context.Context) string {
	content, err := os.ReadFile(c.cfg.CredentialsPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warnf(ctx, "Failed to read persisted credentials: %v", err)
		}

		return ""
	}

	var stored storedCredentials
	if err = json.Unmarshal(content, &stored); err != nil {
		logger.Warnf(ctx, "Persisted credentials are corrupt, ignoring: %v", err)

		return ""
	}

	// A credential minted for another account must not be resumed.
	if stored.Username != c.cfg.Username {
		return ""
	}

	return stored.Credential
}

// writeStoredCredentials persists the reusable credential blob.
func (c *ClientImpl) writeStoredCredentials(ctx context.Context, credential string) {
	content, err := json.Marshal(storedCredentials{
		Username:   c.cfg.Username,
		Credential: credential,
	})
	if err != nil {
		logger.Warnf(ctx, "Failed to marshal credentials: %v", err)

		return
	}

	if err = os.WriteFile(c.cfg.CredentialsPath, content, constants.DefaultFilePermissions); err != nil {
		logger.Warnf(ctx, "Failed to persist credentials: %v", err)
	}
}
