package main

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher retrieves source documents over HTTP. Redirects are followed
// transparently up to a fixed ceiling; the final response must be a success
// status.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher builds a fetcher with the configured timeout and redirect
// ceiling.
func NewFetcher(timeout time.Duration, maxRedirects int, userAgent string) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		userAgent: userAgent,
	}
}

// Fetch returns the raw document text for url, or a *FetchError on timeout,
// transport failure, or a non-2xx final status.
func (f *Fetcher) Fetch(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: fmt.Errorf("reading body: %w", err)}
	}
	return string(body), nil
}
