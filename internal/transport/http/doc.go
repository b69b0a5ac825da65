// Package http provides custom HTTP transport utilities:
// request/response logging at debug level and injection of default
// headers such as User-Agent into outgoing requests.
package http
