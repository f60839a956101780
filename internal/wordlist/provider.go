// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package wordlist

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"

	"github.com/staranto/feedpassgo/internal/cacheutil"
)

// Provider builds and holds a word list. It is not safe for concurrent use.
type Provider struct {
	cfg     Config
	fetcher Fetcher
	store   cacheutil.Store
	logger  log.Interface
	words   []string
	fetched bool
}

// Option customizes a Provider.
type Option func(*Provider)

// WithFetcher replaces the HTTP fetcher.
func WithFetcher(f Fetcher) Option {
	return func(p *Provider) { p.fetcher = f }
}

// WithStore replaces the cache store derived from Config.CachePath.
func WithStore(s cacheutil.Store) Option {
	return func(p *Provider) { p.store = s }
}

// WithLogger sets where fallback warnings go. Defaults to the apex/log
// global logger.
func WithLogger(l log.Interface) Option {
	return func(p *Provider) { p.logger = l }
}

// NewProvider returns a Provider for cfg. It does no I/O other than preparing
// the cache store, so configuration is not validated until Build fetches.
func NewProvider(ctx context.Context, cfg Config, opts ...Option) (*Provider, error) {
	p := &Provider{
		cfg:    cfg.withDefaults(),
		logger: log.Log,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.store == nil {
		s, err := cacheutil.Open(ctx, p.cfg.CachePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open cache %s: %w", p.cfg.CachePath, err)
		}
		p.store = s
	}
	if p.fetcher == nil {
		f := NewHTTPFetcher(p.cfg.ConnectTimeout, p.cfg.MaxRedirects)
		f.Timeout = p.cfg.FetchTimeout
		p.fetcher = f
	}

	return p, nil
}

// Config returns the effective configuration.
func (p *Provider) Config() Config {
	return p.cfg
}

// Store returns the cache store.
func (p *Provider) Store() cacheutil.Store {
	return p.store
}

// Words returns the in-memory word list.
func (p *Provider) Words() []string {
	return p.words
}

// Fetched reports whether the last Build took its words from the network.
func (p *Provider) Fetched() bool {
	return p.fetched
}

// Build produces the word list and keeps it in memory.
//
// With preferCache (or a cache-only config) a non-empty cache is returned
// without touching the network. Otherwise the feed is fetched, and a
// non-empty result is written to the cache. Fetch and parse failures are
// logged and answered with the cache contents, which may be empty. Only an
// invalid Config is returned as an error.
func (p *Provider) Build(ctx context.Context, preferCache bool) ([]string, error) {
	p.fetched = false
	if preferCache || p.cfg.CacheOnly {
		words := p.LoadCache(ctx)
		if len(words) > 0 || p.cfg.CacheOnly {
			return words, nil
		}
		p.logger.Debug("cache empty, fetching")
	}

	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}

	words, err := p.fetch(ctx)
	if err != nil {
		p.logger.WithError(err).WithField("url", p.cfg.SourceURL).Warn("falling back to cached word list")
		return p.LoadCache(ctx), nil
	}

	p.words = words
	p.fetched = true
	if err := p.persist(ctx, words); err != nil {
		p.logger.WithError(err).Warn("failed to write word list cache")
	}

	return words, nil
}

// LoadCache replaces the in-memory list with the cache contents. A missing or
// malformed cache leaves the list empty.
func (p *Provider) LoadCache(ctx context.Context) []string {
	p.words = nil

	entry, err := p.store.Read(ctx)
	if err != nil {
		if errors.Is(err, cacheutil.ErrNotCached) {
			p.logger.Debugf("no cached word list at %s", p.store.Location())
		} else {
			p.logger.WithError(err).Warn("failed to read word list cache")
		}
		return nil
	}

	words, skipped, err := Decode(entry.Data)
	if err != nil {
		p.logger.WithError(err).WithField("cache", entry.Location).Warn("ignoring word list cache")
		return nil
	}
	if skipped > 0 {
		p.logger.WithField("cache", entry.Location).Warnf("skipped %d invalid cache entries", skipped)
	}

	p.logger.Debugf("loaded %d words from %s", len(words), entry.Location)
	p.words = words
	return words
}

func (p *Provider) fetch(ctx context.Context) ([]string, error) {
	p.logger.Debugf("fetching %s", p.cfg.SourceURL)

	body, err := p.fetcher.Fetch(ctx, p.cfg.SourceURL)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrFetch)
	}

	words, err := Extract(bytes.NewReader(body), p.cfg.MinWordLength, p.cfg.MaxWordLength)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no usable words in %s", ErrFetch, p.cfg.SourceURL)
	}

	p.logger.Debugf("extracted %d words", len(words))
	return words, nil
}

func (p *Provider) persist(ctx context.Context, words []string) error {
	data, err := Encode(words)
	if err != nil {
		return err
	}
	return p.store.Write(ctx, data)
}
