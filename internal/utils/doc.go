// Package utils contains small helpers shared across the application:
// safe numeric conversions, filesystem checks, list-file reading,
// regex group extraction, and content-type classification for logging.
package utils
