// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/staranto/feedpassgo/internal/config"
)

// Formats lists the accepted --output values.
var Formats = []string{"text", "json", "yaml"}

// Options control text rendering.
type Options struct {
	Format string
	// Color enables the configured table colors.
	Color bool
	// Columns is the number of word columns in table output.
	Columns int
}

// Report describes the state of a word list cache.
type Report struct {
	Location string    `json:"location" yaml:"location"`
	Words    int       `json:"words" yaml:"words"`
	Size     int64     `json:"size" yaml:"size"`
	ModTime  time.Time `json:"modified" yaml:"modified"`
	Fetched  bool      `json:"fetched" yaml:"fetched"`
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec
}

// Words writes the word list. Text output is a borderless table when w is a
// terminal and one word per line otherwise.
func Words(w io.Writer, words []string, opts Options) error {
	switch opts.Format {
	case "json":
		return writeJSON(w, words)
	case "yaml":
		return writeYAML(w, words)
	case "", "text":
		if !IsTerminal(w) {
			for _, word := range words {
				if _, err := fmt.Fprintln(w, word); err != nil {
					return err
				}
			}
			return nil
		}
		_, err := fmt.Fprintln(w, wordTable(words, opts))
		return err
	default:
		return fmt.Errorf("unknown output format %q, must be one of %v", opts.Format, Formats)
	}
}

// CacheReport writes a summary of the cache.
func CacheReport(w io.Writer, r Report, opts Options) error {
	switch opts.Format {
	case "json":
		return writeJSON(w, r)
	case "yaml":
		return writeYAML(w, r)
	case "", "text":
		verb := "cached"
		if r.Fetched {
			verb = "fetched"
		}
		age := "never"
		if !r.ModTime.IsZero() {
			age = humanize.Time(r.ModTime)
		}
		_, err := fmt.Fprintf(w, "%s %s words (%s) at %s, updated %s\n",
			verb, humanize.Comma(int64(r.Words)), humanize.Bytes(uint64(max(r.Size, 0))), r.Location, age)
		return err
	default:
		return fmt.Errorf("unknown output format %q, must be one of %v", opts.Format, Formats)
	}
}

func wordTable(words []string, opts Options) *table.Table {
	cols := opts.Columns
	if cols < 1 {
		cols = 4
	}

	var rows [][]string
	for i := 0; i < len(words); i += cols {
		row := make([]string, cols)
		copy(row, words[i:min(i+cols, len(words))])
		rows = append(rows, row)
	}

	var (
		cellStyle    = lipgloss.NewStyle().Align(lipgloss.Left).PaddingRight(2)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)
	if opts.Color {
		even, odd := getColors("colors")
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(even))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(odd))
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow || row%2 == 0 {
				return evenRowStyle
			}
			return oddRowStyle
		}).
		Headers().
		Rows(rows...)

	// Without a header row the last data row is not rendered, so use blank
	// titles and hide the header border.
	// https://github.com/charmbracelet/lipgloss/issues/261
	return t.Headers(make([]string, cols)...).BorderHeader(false)
}

// getColors returns configured color values for table rendering.
func getColors(key string) (even string, odd string) {
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
