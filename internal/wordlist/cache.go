// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package wordlist

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/staranto/feedpassgo/internal/cacheutil"
)

// Encode serializes words as a sorted JSON array.
func Encode(words []string) ([]byte, error) {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)

	b, err := json.Marshal(sorted)
	if err != nil {
		return nil, fmt.Errorf("failed to encode word list: %w", err)
	}
	return append(b, '\n'), nil
}

// Decode parses a cached word list. The document must be a JSON array; any
// element that is not a non-empty alphabetic string is dropped and counted in
// skipped. Anything else wraps cacheutil.ErrCacheMalformed.
func Decode(data []byte) (words []string, skipped int, err error) {
	if len(data) == 0 {
		return nil, 0, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, 0, fmt.Errorf("%w: not valid JSON", cacheutil.ErrCacheMalformed)
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, 0, fmt.Errorf("%w: expected a JSON array, got %s", cacheutil.ErrCacheMalformed, doc.Type)
	}

	seen := make(map[string]struct{})
	doc.ForEach(func(_, v gjson.Result) bool {
		if v.Type != gjson.String || v.Str == "" || !isAlpha(v.Str) {
			skipped++
			return true
		}
		if _, dup := seen[v.Str]; !dup {
			seen[v.Str] = struct{}{}
			words = append(words, v.Str)
		}
		return true
	})

	return words, skipped, nil
}
