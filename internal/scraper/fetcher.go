package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxResponseBodyBytes limits the size of fetched responses.
const maxResponseBodyBytes = 10 * 1024 * 1024 // 10 MB

// Fetcher performs the single HTTP GET a scraper is allowed per invocation.
// It identifies itself with the configured User-Agent and bounds every
// request with a timeout.
type Fetcher struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

// NewFetcher creates a Fetcher with the given identity and per-request
// timeout.
func NewFetcher(userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		timeout:   timeout,
	}
}

// Fetch GETs url and returns the response body. Non-2xx responses and
// bodies over the size cap are treated as fetch failures.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, doErr := f.client.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, doErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if readErr != nil {
		return nil, fmt.Errorf("read body: %w", readErr)
	}

	return body, nil
}
