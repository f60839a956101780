// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package wordlist

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// trimCutset is stripped from both ends of every candidate word. It covers
// the ASCII punctuation of the feed text plus the typographic quotes German
// and English feeds use.
const trimCutset = " \t\r\n,.;:?!\"'`„“”‚‘’«»‹›"

// Extract reads an XML document and returns the normalized, deduplicated,
// sorted words found in its description elements. Malformed XML wraps
// ErrParse.
func Extract(r io.Reader, minLen, maxLen int) ([]string, error) {
	texts, err := descriptions(r)
	if err != nil {
		return nil, err
	}

	caser := cases.Title(language.Und)
	seen := make(map[string]struct{})
	for _, text := range texts {
		for _, field := range strings.Fields(text) {
			if w, ok := normalize(caser, field, minLen, maxLen); ok {
				seen[w] = struct{}{}
			}
		}
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)

	return words, nil
}

// descriptions returns the text content of every description element.
func descriptions(r io.Reader) ([]string, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	// Feeds routinely carry HTML entities such as &nbsp; in their text.
	d.Entity = xml.HTMLEntity

	var (
		texts    []string
		buf      strings.Builder
		inside   int
		depth    int
		seenRoot bool
	)

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 && seenRoot {
				return nil, fmt.Errorf("%w: more than one root element", ErrParse)
			}
			seenRoot = true
			depth++
			if t.Name.Local == "description" {
				inside++
			}
		case xml.EndElement:
			depth--
			if t.Name.Local == "description" && inside > 0 {
				inside--
				if inside == 0 {
					texts = append(texts, buf.String())
					buf.Reset()
				}
			}
		case xml.CharData:
			if inside > 0 {
				buf.Write(t)
				// Text of nested elements stays separated.
				buf.WriteByte(' ')
			}
		}
	}

	if !seenRoot {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}

	return texts, nil
}

// normalize trims punctuation from raw and reports whether what remains is an
// ASCII alphabetic word of acceptable length, returned capitalized.
func normalize(caser cases.Caser, raw string, minLen, maxLen int) (string, bool) {
	w := strings.Trim(raw, trimCutset)
	if w == "" || len(w) < minLen || len(w) > maxLen {
		return "", false
	}
	if !isAlpha(w) {
		return "", false
	}
	return caser.String(w), true
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
