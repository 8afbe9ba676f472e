package deletion

import (
	"log/slog"
	"net/http"
)

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// options holds the internal configuration for a Requester.
type options struct {
	client          Doer
	logger          *slog.Logger
	headers         http.Header
	cookie          string
	omitContentType bool
}

// Option configures a Requester.
type Option func(*options)

// WithHTTPClient replaces the pooled default client.
func WithHTTPClient(client Doer) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithLogger sets the logger. Requests are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHeader adds a header sent with every deletion request.
func WithHeader(key, value string) Option {
	return func(o *options) {
		o.headers.Add(key, value)
	}
}

// WithCookie forwards a session cookie, the way a browser would for a same-origin fetch.
func WithCookie(cookie string) Option {
	return func(o *options) {
		o.cookie = cookie
	}
}

// WithoutContentType stops the Requester from declaring the body as application/json.
func WithoutContentType() Option {
	return func(o *options) {
		o.omitContentType = true
	}
}
