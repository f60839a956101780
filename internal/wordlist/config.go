// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package wordlist

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/staranto/feedpassgo/internal/cacheutil"
)

const (
	DefaultMaxRedirects   = 2
	DefaultConnectTimeout = 5 * time.Second
	DefaultFetchTimeout   = 30 * time.Second

	GermanFeedURL  = "https://www.tagesschau.de/xml/rss2/"
	EnglishFeedURL = "https://feeds.bbci.co.uk/news/rss.xml"
)

// Config controls where words come from and which of them are kept.
//
// A zero MaxRedirects disables following redirects; use a preset or
// DefaultMaxRedirects for the usual behavior.
type Config struct {
	SourceURL      string
	MinWordLength  int
	MaxWordLength  int
	CachePath      string
	MaxRedirects   int
	ConnectTimeout time.Duration
	// FetchTimeout bounds the whole request, including reading the body.
	FetchTimeout time.Duration
	// CacheOnly never touches the network.
	CacheOnly bool
}

// German reads a German news feed and keeps words of 8 to 15 letters.
func German(cachePath string) Config {
	return Config{
		SourceURL:      GermanFeedURL,
		MinWordLength:  8,
		MaxWordLength:  15,
		CachePath:      cachePath,
		MaxRedirects:   DefaultMaxRedirects,
		ConnectTimeout: DefaultConnectTimeout,
		FetchTimeout:   DefaultFetchTimeout,
	}
}

// English reads an English news feed and keeps words of 4 to 12 letters.
func English(cachePath string) Config {
	return Config{
		SourceURL:      EnglishFeedURL,
		MinWordLength:  4,
		MaxWordLength:  12,
		CachePath:      cachePath,
		MaxRedirects:   DefaultMaxRedirects,
		ConnectTimeout: DefaultConnectTimeout,
		FetchTimeout:   DefaultFetchTimeout,
	}
}

// CacheOnly loads words from cachePath and nothing else.
func CacheOnly(cachePath string) Config {
	return Config{
		CachePath: cachePath,
		CacheOnly: true,
	}
}

// Preset returns the named preset: de/german, en/english or cache.
func Preset(name, cachePath string) (Config, error) {
	switch strings.ToLower(name) {
	case "de", "german":
		return German(cachePath), nil
	case "en", "english":
		return English(cachePath), nil
	case "cache", "cache-only":
		return CacheOnly(cachePath), nil
	default:
		return Config{}, &ConfigError{Field: "preset", Reason: fmt.Sprintf("%q is not one of %v", name, PresetNames)}
	}
}

// PresetNames lists the canonical preset names.
var PresetNames = []string{"de", "en", "cache"}

// Validate checks the fields needed for a fetch.
func (c Config) Validate() error {
	u, err := url.ParseRequestURI(c.SourceURL)
	if err != nil {
		return &ConfigError{Field: "source url", Reason: fmt.Sprintf("%q is not a valid URL", c.SourceURL)}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ConfigError{Field: "source url", Reason: fmt.Sprintf("scheme %q is not http or https", u.Scheme)}
	}
	if u.Host == "" {
		return &ConfigError{Field: "source url", Reason: fmt.Sprintf("%q has no host", c.SourceURL)}
	}
	if c.MinWordLength > c.MaxWordLength {
		return &ConfigError{
			Field:  "word length",
			Reason: fmt.Sprintf("min %d is greater than max %d", c.MinWordLength, c.MaxWordLength),
		}
	}
	if c.MaxRedirects < 0 {
		return &ConfigError{Field: "max redirects", Reason: "must not be negative"}
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.CachePath == "" {
		c.CachePath = cacheutil.DefaultName
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = DefaultFetchTimeout
	}
	return c
}
