// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package wordlist

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/apex/log"

	"github.com/staranto/feedpassgo/internal/version"
)

// maxBodyBytes caps how much of a feed is read.
const maxBodyBytes = 16 << 20

// Fetcher retrieves the raw feed document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher is a Fetcher backed by net/http with a bounded connect timeout
// and redirect count.
type HTTPFetcher struct {
	Client    *http.Client
	UserAgent string
	// Timeout bounds a whole Fetch, body included. Zero means no limit
	// beyond the caller's context.
	Timeout time.Duration
}

// NewHTTPFetcher returns an HTTPFetcher. maxRedirects of 0 returns the
// redirect response itself instead of following it.
func NewHTTPFetcher(connectTimeout time.Duration, maxRedirects int) *HTTPFetcher {
	dialer := &net.Dialer{Timeout: connectTimeout}

	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert
	transport.DialContext = dialer.DialContext
	transport.TLSHandshakeTimeout = connectTimeout
	transport.ResponseHeaderTimeout = DefaultFetchTimeout

	client := &http.Client{
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if maxRedirects == 0 {
				return http.ErrUseLastResponse
			}
			if len(via) > maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			log.Debugf("following redirect to %s", req.URL)
			return nil
		},
	}

	return &HTTPFetcher{
		Client:    client,
		UserAgent: "feedpass/" + version.Version,
		Timeout:   DefaultFetchTimeout,
	}
}

// Fetch GETs url and returns the body. Transport errors, non-2xx statuses and
// empty bodies all wrap ErrFetch.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrFetch, err)
	}
	req.Header.Set("User-Agent", f.UserAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.1")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetch, url, resp.Status)
	}

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrFetch, err)
	}

	if len(bytes.TrimSpace(doc.Bytes())) == 0 {
		return nil, fmt.Errorf("%w: %s returned an empty body", ErrFetch, url)
	}

	return doc.Bytes(), nil
}
