// Package codec converts between Spotify's two interchangeable track
// identifier encodings: the 128-bit hexadecimal GID used by the metadata
// backend and the 22-character base62 track ID used everywhere else.
// The conversion is bijective and follows the service's own digit ordering
// convention, which includes a case inversion step on the base62 side.
package codec
