// Package spotify provides the core functionality for downloading tracks
// from the streaming service. It owns one authenticated session, resolves
// caller-supplied track identifiers, selects the stream quality from the
// premium policy, and persists audio streams to disk atomically.
package spotify
