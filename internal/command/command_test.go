// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<item><description>Harbor lantern meadow</description></item>
<item><description><![CDATA[Orchard "willow" ferns.]]></description></item>
</channel></rss>`

var testWords = []string{"Ferns", "Harbor", "Lantern", "Meadow", "Orchard", "Willow"}

type feedServer struct {
	*httptest.Server
	hits atomic.Int32
}

func newFeedServer(t *testing.T) *feedServer {
	t.Helper()
	fs := &feedServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.hits.Add(1)
		_, _ = w.Write([]byte(testFeed))
	}))
	t.Cleanup(fs.Close)
	return fs
}

// isolate keeps the tests away from the user's cache and config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("FEEDPASS_CACHE", "")
	t.Setenv("FEEDPASS_CACHE_DIR", dir)
	t.Setenv("FEEDPASS_CFG", filepath.Join(dir, "feedpass.yaml"))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	args = append([]string{"feedpass"}, args...)

	app, err := InitApp(context.Background(), args)
	require.NoError(t, err)

	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	err = app.Run(context.Background(), args)
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestGen(t *testing.T) {
	dir := isolate(t)
	srv := newFeedServer(t)

	out, err := run(t, "gen", "--source", srv.URL, "--min", "4", "--max", "12",
		"--pattern", "w", "--count", "5")
	require.NoError(t, err)

	got := lines(out)
	assert.Len(t, got, 5)
	for _, pw := range got {
		assert.Contains(t, testWords, pw)
	}
	assert.EqualValues(t, 1, srv.hits.Load())
	assert.FileExists(t, filepath.Join(dir, "wordlist.json"))
}

func TestGen_DefaultPattern(t *testing.T) {
	isolate(t)
	srv := newFeedServer(t)

	out, err := run(t, "gen", "--source", srv.URL, "--min", "4", "--max", "12")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 1)
	var word string
	for _, w := range testWords {
		if strings.HasPrefix(got[0], w) {
			word = w
		}
	}
	assert.NotEmpty(t, word, got[0])
}

func TestGen_EmptyPatternMeansDefault(t *testing.T) {
	isolate(t)
	srv := newFeedServer(t)

	out, err := run(t, "gen", "--source", srv.URL, "--min", "4", "--max", "12", "--pattern", "")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestGen_InvalidPattern(t *testing.T) {
	isolate(t)
	srv := newFeedServer(t)

	_, err := run(t, "gen", "--source", srv.URL, "--pattern", "wx")
	assert.ErrorContains(t, err, "only i, s and w")
	assert.Zero(t, srv.hits.Load())
}

func TestGen_PreferCache(t *testing.T) {
	dir := isolate(t)
	srv := newFeedServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wordlist.json"), []byte(`["Alpha"]`), 0o600))

	out, err := run(t, "gen", "--source", srv.URL, "--pattern", "w", "--prefer-cache")
	require.NoError(t, err)
	assert.Equal(t, "Alpha\n", out)
	assert.Zero(t, srv.hits.Load())
}

func TestGen_CachePreset(t *testing.T) {
	dir := isolate(t)
	cache := filepath.Join(dir, "mine.json")
	require.NoError(t, os.WriteFile(cache, []byte(`["Beta"]`), 0o600))

	out, err := run(t, "gen", "--preset", "cache", "--cache", cache, "--pattern", "ww", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"BetaBeta", "BetaBeta"}, lines(out))
}

func TestGen_NoWords(t *testing.T) {
	isolate(t)

	_, err := run(t, "gen", "--preset", "cache")
	assert.ErrorContains(t, err, "word list")
}

func TestGen_BadFlags(t *testing.T) {
	isolate(t)

	_, err := run(t, "gen", "--preset", "fr")
	assert.Error(t, err)

	_, err = run(t, "gen", "--count", "0")
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	dir := isolate(t)
	srv := newFeedServer(t)

	out, err := run(t, "fetch", "--source", srv.URL, "--min", "4", "--max", "12", "-o", "json")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.EqualValues(t, len(testWords), report["words"])
	assert.Equal(t, filepath.Join(dir, "wordlist.json"), report["location"])
	assert.Equal(t, true, report["fetched"])
	assert.Greater(t, report["size"], float64(0))
}

func TestFetch_Text(t *testing.T) {
	isolate(t)
	srv := newFeedServer(t)

	out, err := run(t, "fetch", "--source", srv.URL, "--min", "4", "--max", "12")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "fetched 6 words ("), out)
}

func TestFetch_Unreachable(t *testing.T) {
	dir := isolate(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := run(t, "fetch", "--source", url)
	assert.ErrorContains(t, err, "no words available")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "wordlist.json"), []byte(`["Alpha","Beta"]`), 0o600))
	out, err := run(t, "fetch", "--source", url)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "cached 2 words ("), out)
}

func TestWords(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wordlist.json"), []byte(`["Alpha","Beta"]`), 0o600))

	out, err := run(t, "words")
	require.NoError(t, err)
	assert.Equal(t, "Alpha\nBeta\n", out)

	out, err = run(t, "words", "--output", "json")
	require.NoError(t, err)
	var got []string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"Alpha", "Beta"}, got)

	out, err = run(t, "words", "--filter", "word^b")
	require.NoError(t, err)
	assert.Equal(t, "Beta\n", out)

	_, err = run(t, "words", "--filter", "size>3")
	assert.ErrorContains(t, err, "invalid filter")

	_, err = run(t, "words", "--output", "csv")
	assert.Error(t, err)
}

func TestWords_NoCache(t *testing.T) {
	isolate(t)

	_, err := run(t, "words")
	assert.ErrorIs(t, err, ErrNoCachedWords)
}

func TestPurge(t *testing.T) {
	dir := isolate(t)

	stale := filepath.Join(dir, "old.json")
	fresh := filepath.Join(dir, "wordlist.json")
	require.NoError(t, os.WriteFile(stale, []byte(`[]`), 0o600))
	require.NoError(t, os.WriteFile(fresh, []byte(`["Alpha"]`), 0o600))
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	out, err := run(t, "purge", "--hours", "24")
	require.NoError(t, err)
	assert.Equal(t, "removed 1 stale cache files\n", out)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, fresh)

	out, err = run(t, "purge", "--hours", "0", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "removed "+fresh)
	assert.NoFileExists(t, fresh)
}

func TestGetMeta(t *testing.T) {
	isolate(t)
	app, err := InitApp(context.Background(), []string{"feedpass", "gen"})
	require.NoError(t, err)

	for _, c := range app.Commands {
		m := GetMeta(c)
		assert.Equal(t, []string{"feedpass", "gen"}, m.Args)
		assert.Equal(t, "gen", m.Config.Namespace)
	}
	assert.Empty(t, GetMeta(nil).Args)
}
