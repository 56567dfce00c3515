// Package fetch reads JSON documents from remote HTTP sources.
//
// It never retries and has no timeout of its own.
// Callers control both through the context they pass in.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-arrower/catalog/alog"
)

// ErrFetch is wrapped by every error returned from this package.
var ErrFetch = errors.New("fetch failed")

// Getter reads the JSON document at url and decodes it into dst.
type Getter interface {
	Get(ctx context.Context, url string, dst any) error
}

// Get is the typed variant of Getter.Get.
func Get[T any](ctx context.Context, getter Getter, url string) (T, error) { //nolint:ireturn // valid use of generics
	var result T

	if err := getter.Get(ctx, url, &result); err != nil {
		return *new(T), err //nolint:wrapcheck // errors of Getter are already wrapping ErrFetch
	}

	return result, nil
}

// Option sets optional properties of an HTTPAdapter.
type Option func(*HTTPAdapter)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(client *http.Client) Option {
	return func(a *HTTPAdapter) {
		if client != nil {
			a.client = client
		}
	}
}

func WithLogger(logger alog.Logger) Option {
	return func(a *HTTPAdapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func NewHTTPAdapter(opts ...Option) *HTTPAdapter {
	adapter := &HTTPAdapter{
		client: http.DefaultClient,
		logger: alog.NewNoop(),
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// HTTPAdapter is a Getter issuing plain GET requests.
type HTTPAdapter struct {
	client *http.Client
	logger alog.Logger
}

var _ Getter = (*HTTPAdapter)(nil)

// Get requests url and decodes the response body as JSON into dst.
// A status outside of 2xx, a transport or a decoding failure all return an error wrapping ErrFetch.
func (a *HTTPAdapter) Get(ctx context.Context, url string, dst any) error {
	a.logger.DebugContext(ctx, "fetch", slog.String("method", http.MethodGet), slog.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrFetch, url, err)
	}

	req.Header.Set("Accept", "application/json")

	res, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrFetch, url, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		a.logger.DebugContext(ctx, "fetch returned unexpected status",
			slog.String("url", url),
			slog.Int("status", res.StatusCode),
		)

		return fmt.Errorf("%w: GET %s: unexpected status %d", ErrFetch, url, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: GET %s: could not decode body: %w", ErrFetch, url, err)
	}

	return nil
}
