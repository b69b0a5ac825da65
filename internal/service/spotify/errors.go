package spotify

import "errors"

// Common errors for the service layer.
var (
	// ErrIncompleteDownload indicates that the downloaded file size doesn't match the expected size.
	ErrIncompleteDownload = errors.New("incomplete download")
	// ErrInvalidTrackID indicates that a caller-supplied identifier is not a base62 track ID.
	ErrInvalidTrackID = errors.New("invalid track ID")
)
