package interfaces

import (
	"context"
	"io"
)

// HTTPClient is the outbound HTTP capability used for sitemap pings and
// feed fetches. Implementations decide on retries and timeouts; callers
// only see the port.
type HTTPClient interface {
	// Get performs a GET request against url.
	Get(ctx context.Context, url string) (Response, error)

	// Post performs a POST request against url with the given body.
	Post(ctx context.Context, url string, body io.Reader) (Response, error)
}

// Response is the client-agnostic view of an HTTP response.
type Response interface {
	// StatusCode returns the HTTP status code.
	StatusCode() int

	// Body returns the response body. The caller must close it.
	Body() io.ReadCloser

	// Header returns the named header value, or "" when absent.
	// Lookup is case-insensitive.
	Header(key string) string
}
