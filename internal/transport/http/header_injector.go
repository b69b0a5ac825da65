package http

import "net/http"

// HeaderInjector is a custom http.RoundTripper that fills in default headers
// on outgoing requests. A header explicitly set by the caller always wins;
// only missing headers are injected.
type HeaderInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// defaults maps header names to the values injected when absent.
	defaults map[string]string
}

// NewHeaderInjector creates and returns a new instance of HeaderInjector.
func NewHeaderInjector(next http.RoundTripper, defaults map[string]string) http.RoundTripper {
	return &HeaderInjector{
		next:     next,
		defaults: defaults,
	}
}

// RoundTrip executes a single HTTP transaction, injecting default headers
// that the request does not already carry.
// It implements the http.RoundTripper interface.
func (t *HeaderInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	for name, value := range t.defaults {
		if req.Header.Get(name) == "" {
			req.Header.Set(name, value)
		}
	}

	return t.next.RoundTrip(req)
}
