// Package spotify provides the session layer for the streaming backend.
// It authenticates a device, mints a scoped bearer token, and exposes the
// content-feed and metadata endpoints. One Client owns one session: the
// session is created when the client is constructed and lives until the
// client is discarded. Token refresh, retry, and backoff are deliberately
// not implemented here; errors surface immediately to the caller.
package spotify
