package spotify

import "errors"

var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrAuthenticationFailed indicates that the session could not be created
	// or the token could not be minted for the requested scopes.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrStreamUnavailable indicates that the backend cannot produce audio data
	// for the requested track and quality (unknown ID, regional restriction,
	// or a quality the account is not entitled to).
	ErrStreamUnavailable = errors.New("stream unavailable")
	// ErrTrackMetadataNotFound indicates that no track exists for the requested GID.
	ErrTrackMetadataNotFound = errors.New("track metadata not found")
)
