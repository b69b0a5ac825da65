package spotify

import "io"

// loginRequest is the payload for the session endpoint.
// Exactly one of Password or StoredCredential is set: password logins create
// a fresh session, stored-credential logins resume a persisted one.
type loginRequest struct {
	// Username is the account name.
	Username string `json:"username"`
	// Password is the account password (password login only).
	Password string `json:"password,omitempty"`
	// StoredCredential is the reusable credential blob (resume login only).
	StoredCredential string `json:"stored_credential,omitempty"`
	// DeviceID identifies this client installation to the backend.
	DeviceID string `json:"device_id"`
}

// loginResponse is the session endpoint's reply.
type loginResponse struct {
	// SessionID authenticates subsequent requests within this session.
	SessionID string `json:"session_id"`
	// StoredCredential is a reusable credential blob minted by the backend.
	StoredCredential string `json:"stored_credential"`
}

// storedCredentials is the persisted-credential file format.
type storedCredentials struct {
	// Username is the account the credential belongs to.
	Username string `json:"username"`
	// Credential is the reusable credential blob.
	Credential string `json:"credential"`
}

// tokenResponse is the token endpoint's reply.
type tokenResponse struct {
	// AccessToken is the bearer token scoped to the requested scopes.
	AccessToken string `json:"access_token"`
	// TokenType is always "Bearer".
	TokenType string `json:"token_type"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`
	// Scopes echoes the granted scopes.
	Scopes []string `json:"scope"`
}

// FetchTrackResult is an open audio stream for a single track.
type FetchTrackResult struct {
	// Body is the audio byte stream. The caller owns closing it.
	Body io.ReadCloser
	// TotalBytes is the expected stream length, or -1 when unknown.
	TotalBytes int64
}

// TrackMetadata describes a track as returned by the metadata endpoint,
// which is keyed by GID rather than by base62 track ID.
type TrackMetadata struct {
	// GID is the track's global identifier as 32 lowercase hex characters.
	GID string `json:"gid"`
	// Name is the track title.
	Name string `json:"name"`
	// AlbumName is the title of the album the track belongs to.
	AlbumName string `json:"album_name"`
	// ArtistNames lists the performing artists.
	ArtistNames []string `json:"artist_names"`
	// DurationMS is the track duration in milliseconds.
	DurationMS int64 `json:"duration_ms"`
	// Number is the track's position on its album.
	Number int `json:"number"`
	// Restricted indicates the track cannot be streamed in the session's region.
	Restricted bool `json:"restricted"`
}
