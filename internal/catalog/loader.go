package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/bestshop/storefront-backend/pkg/errors"
)

const errorBodyReadLimit int64 = 1024

// Loader fetches the product catalog from the upstream JSON feed.
type Loader struct {
	httpClient *http.Client
	feedURL    string
}

// LoaderOption configures optional loader behavior.
type LoaderOption func(*Loader)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *Loader) {
		if client != nil {
			l.httpClient = client
		}
	}
}

// NewLoader builds a catalog loader for the given feed URL.
func NewLoader(feedURL string, timeout time.Duration, opts ...LoaderOption) (*Loader, error) {
	trimmed := strings.TrimSpace(feedURL)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog feed URL is required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	loader := &Loader{
		feedURL:    trimmed,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(loader)
		}
	}
	return loader, nil
}

// Fetch downloads and decodes the full catalog. The feed carries the list
// under a top-level "data" key.
func (l *Loader) Fetch(ctx context.Context) ([]Product, error) {
	if l == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "catalog loader not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.feedURL, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute catalog request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "catalog request failed")
	}

	var feed struct {
		Data []Product `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode catalog response")
	}

	return feed.Data, nil
}
