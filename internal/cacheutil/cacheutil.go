// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
)

// DefaultName is the cache file used when no location is configured.
const DefaultName = "wordlist.json"

var (
	// ErrNotCached is returned when no entry exists or caching is disabled.
	ErrNotCached = errors.New("no cache entry")
	// ErrCacheMalformed is returned when an entry exists but cannot be decoded.
	ErrCacheMalformed = errors.New("cache entry is malformed")
)

// Entry represents a cached artifact.
type Entry struct {
	Location string
	Data     []byte
	Size     int64
	ModTime  time.Time
}

// Store reads and writes a single cache entry.
type Store interface {
	Read(ctx context.Context) (*Entry, error)
	Write(ctx context.Context, data []byte) error
	Remove(ctx context.Context) error
	Location() string
}

// Dir resolves the base cache directory.
// Precedence:
//  1. FEEDPASS_CACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/feedpass
//
// Returns ("", false) if a base cannot be resolved (treat as disabled).
func Dir() (string, bool) {
	if c, ok := os.LookupEnv("FEEDPASS_CACHE_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "feedpass"), true
	}
	return "", false
}

// Enabled returns true unless FEEDPASS_CACHE explicitly disables it ("0"/"false").
func Enabled() bool {
	enabled, _ := os.LookupEnv("FEEDPASS_CACHE")
	return enabled == "" || (enabled != "0" && enabled != "false")
}

// EnsureBaseDir creates the base cache directory if caching is enabled.
// Returns the path, whether it is usable, and an error if creation failed.
func EnsureBaseDir() (string, bool, error) {
	if !Enabled() {
		return "", false, nil
	}
	base, ok := Dir()
	if !ok {
		return "", false, nil
	}
	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return base, false, fmt.Errorf("failed to create cache base directory: %w", err)
	}
	return base, true, nil
}

// ResolvePath maps a configured cache location to the path actually used. An
// empty location means DefaultName. Relative paths are placed under Dir(), the
// same base Purge sweeps, and are left relative to the working directory only
// when no base can be resolved.
func ResolvePath(location string) string {
	if location == "" {
		location = DefaultName
	}
	if filepath.IsAbs(location) {
		return location
	}
	if base, ok := Dir(); ok {
		return filepath.Join(base, location)
	}
	return location
}

// Open returns the store for location. s3://bucket/key locations use S3,
// everything else is a local file.
func Open(ctx context.Context, location string) (Store, error) {
	if strings.HasPrefix(location, s3Scheme) {
		return NewS3Store(ctx, location)
	}
	return NewFileStore(location), nil
}

// FileStore keeps the cache entry in a local file.
type FileStore struct {
	Path string
}

// NewFileStore returns a FileStore for the resolved location.
func NewFileStore(location string) *FileStore {
	return &FileStore{Path: ResolvePath(location)}
}

func (fs *FileStore) Location() string {
	return fs.Path
}

// Read attempts to read the cached entry.
func (fs *FileStore) Read(_ context.Context) (*Entry, error) {
	if !Enabled() {
		return nil, ErrNotCached
	}
	info, err := os.Stat(fs.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotCached
		}
		return nil, fmt.Errorf("failed to stat cache: %w", err)
	}
	b, err := os.ReadFile(fs.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}
	return &Entry{
		Location: fs.Path,
		Data:     bytes.TrimSpace(b),
		Size:     info.Size(),
		ModTime:  info.ModTime(),
	}, nil
}

// Write stores data, overwriting any previous entry. Creates directories as
// needed.
func (fs *FileStore) Write(_ context.Context, data []byte) error {
	if !Enabled() {
		return nil // treat as disabled.
	}
	if dir := filepath.Dir(fs.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}
	if err := os.WriteFile(fs.Path, data, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

// Remove deletes the entry. A missing entry is not an error.
func (fs *FileStore) Remove(_ context.Context) error {
	if err := os.Remove(fs.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove cache: %w", err)
	}
	return nil
}

// Purge removes files under the base cache directory older than the provided
// number of hours. If hours <= 0 or the cache dir cannot be resolved, it is a
// no-op. Returns the number of files removed.
func Purge(hours int) (int, error) {
	if hours <= 0 {
		log.Debug("cache cleaning disabled")
		return 0, nil
	}
	base, ok := Dir()
	if !ok {
		return 0, nil
	}
	if _, err := os.Stat(base); errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}

	removed := 0
	maxAge := time.Duration(hours) * time.Hour
	if err := filepath.Walk(base, func(path string, info os.FileInfo, err error) error {
		if err != nil || info == nil {
			return nil
		}
		if !info.IsDir() && time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err == nil {
				removed++
				log.Debugf("removed cache file %s", path)
			} else {
				log.WithError(err).Warnf("failed to remove cache file %s", path)
			}
		}
		return nil
	}); err != nil {
		return removed, fmt.Errorf("failed to purge cache: %w", err)
	}
	return removed, nil
}
