package feed

import "fmt"

// ValidationError reports malformed request input. It maps to a 400 at the
// HTTP boundary and is never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// UpstreamError reports a non-success response from the external feed. The
// upstream status and raw body are carried verbatim for diagnostics; it maps
// to a 502 at the HTTP boundary.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded %d", e.Status)
}

// TransportError reports a network-level failure reaching the feed, decoding
// problems included. It maps to a 500 at the HTTP boundary.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "feed request failed: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }
