// Package app provides the main application logic for downloading tracks
// from the streaming service. It initializes the necessary components, such
// as the authenticated session client and the download service, and
// orchestrates the download process.
package app
