// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/apex/log"
)

// filterRegex is the pattern used to parse filter expressions into key,
// operator, and target components. Operators are one of = ^ $ ~ < > @ or /,
// optionally prefixed with '!'.
var filterRegex = regexp.MustCompile(`^(word|len)(!?[=^$~<>@/])(.*)$`)

// Filter represents a single parsed --filter expression including the key,
// operand, optional negation and target value.
type Filter struct {
	Key     string
	Negate  bool
	Operand string
	Target  string
}

// BuildFilters parses a filter specification string into a slice of Filter.
// The key is "word" for the word itself or "len" for its length. Malformed
// entries are returned as an error.
func BuildFilters(spec string) ([]Filter, error) {
	//nolint:prealloc
	var filters []Filter

	// If there are no filters specified, go home early.
	if spec == "" {
		return filters, nil
	}

	// Default delimiter is ",", allow an override.
	delim := ","
	if d, ok := os.LookupEnv("FEEDPASS_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		filterSpec = strings.TrimSpace(filterSpec)
		parts := filterRegex.FindStringSubmatch(filterSpec)
		if parts == nil {
			return nil, fmt.Errorf("invalid filter: %q", filterSpec)
		}

		f := Filter{
			Key:     parts[1],
			Negate:  strings.HasPrefix(parts[2], "!"),
			Operand: strings.TrimPrefix(parts[2], "!"),
			Target:  parts[3],
		}

		switch f.Key {
		case "len":
			if _, err := strconv.Atoi(f.Target); err != nil {
				return nil, fmt.Errorf("invalid filter: %q, len needs a number", filterSpec)
			}
			if !strings.Contains("=<>", f.Operand) {
				return nil, fmt.Errorf("invalid filter: %q, len supports = < >", filterSpec)
			}
		case "word":
			if f.Operand == "/" {
				if _, err := regexp.Compile(f.Target); err != nil {
					return nil, fmt.Errorf("invalid filter: %q: %w", filterSpec, err)
				}
			}
		}

		filters = append(filters, f)
	}

	log.Debugf("filters: %+v", filters)
	return filters, nil
}

// FilterWords returns the words matching every filter in spec, keeping their
// order.
func FilterWords(words []string, spec string) ([]string, error) {
	filters, err := BuildFilters(spec)
	if err != nil {
		return nil, err
	}
	if len(filters) == 0 {
		return words, nil
	}

	var out []string
	for _, w := range words {
		if applyFilters(w, filters) {
			out = append(out, w)
		}
	}
	return out, nil
}

// applyFilters returns true if the word matches all of the provided filters.
func applyFilters(word string, filters []Filter) bool {
	for _, filter := range filters {
		var result bool
		switch filter.Key {
		case "len":
			result = checkNumericOperand(len(word), filter)
		default:
			result = checkStringOperand(word, filter)
		}
		if !result {
			return false
		}
	}
	return true
}

// checkNumericOperand compares a length against the filter target.
func checkNumericOperand(value int, filter Filter) bool {
	tgt, _ := strconv.Atoi(filter.Target)

	switch filter.Operand {
	case "=":
		return (value == tgt) == !filter.Negate
	case ">":
		return (value > tgt) == !filter.Negate
	case "<":
		return (value < tgt) == !filter.Negate
	default:
		return false
	}
}

// checkStringOperand evaluates a string comparison style filter against the
// provided value using the operand semantics.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Target == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Target) == !filter.Negate
	case "^":
		return strings.HasPrefix(strings.ToLower(value), strings.ToLower(filter.Target)) == !filter.Negate
	case "$":
		return strings.HasSuffix(strings.ToLower(value), strings.ToLower(filter.Target)) == !filter.Negate
	case ">":
		return value > filter.Target == !filter.Negate
	case "<":
		return value < filter.Target == !filter.Negate
	case "@":
		return strings.Contains(strings.ToLower(value), strings.ToLower(filter.Target)) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Target, value)
		if err != nil {
			log.Error("invalid regex: " + filter.Target)
			return false
		}
		return matched == !filter.Negate
	default:
		return false
	}
}
