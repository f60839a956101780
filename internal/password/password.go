// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package password renders passwords from a pattern of directives:
//
//	i  a number from 1 to 999
//	s  one ASCII symbol from '!' to '/'
//	w  a word from the word list
//
// Fragments are concatenated without separators, so "wisw" yields something
// like "Harbor417%Lantern".
package password

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// DefaultPattern is used when no pattern is given.
const DefaultPattern = "wisw"

const (
	minNumber = 1
	maxNumber = 999
	minSymbol = 33 // '!'
	maxSymbol = 47 // '/'
)

var (
	ErrInvalidPattern  = errors.New("invalid pattern")
	ErrMissingWordList = errors.New("no word list available")
)

// Source supplies words. LoadCache is consulted only when Words is empty.
type Source interface {
	Words() []string
	LoadCache(ctx context.Context) []string
}

// IntnFunc returns a uniformly distributed integer in [min, max].
type IntnFunc func(min, max int) (int, error)

// Generator renders patterns against a Source.
type Generator struct {
	src  Source
	intn IntnFunc
}

// Option customizes a Generator.
type Option func(*Generator)

// WithIntn replaces the crypto/rand backed integer source.
func WithIntn(fn IntnFunc) Option {
	return func(g *Generator) { g.intn = fn }
}

// New returns a Generator reading words from src.
func New(src Source, opts ...Option) *Generator {
	g := &Generator{src: src, intn: SecureIntn}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SecureIntn draws from crypto/rand without modulo bias.
func SecureIntn(min, max int) (int, error) {
	if max < min {
		return 0, fmt.Errorf("empty range [%d, %d]", min, max)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min)+1))
	if err != nil {
		return 0, fmt.Errorf("failed to read random number: %w", err)
	}
	return min + int(n.Int64()), nil
}

// ValidatePattern reports whether pattern is a non-empty string of i, s and w.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("%w: pattern is empty", ErrInvalidPattern)
	}
	for i, r := range pattern {
		switch r {
		case 'i', 's', 'w':
		default:
			return fmt.Errorf("%w: %q at position %d, only i, s and w are allowed", ErrInvalidPattern, r, i)
		}
	}
	return nil
}

// Generate renders one password. The pattern is validated before any word
// list access.
func (g *Generator) Generate(ctx context.Context, pattern string) (string, error) {
	if err := ValidatePattern(pattern); err != nil {
		return "", err
	}

	words, err := g.words(ctx)
	if err != nil {
		return "", err
	}

	return g.render(pattern, words)
}

// GenerateN renders n passwords from the same word list.
func (g *Generator) GenerateN(ctx context.Context, pattern string, n int) ([]string, error) {
	if err := ValidatePattern(pattern); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", n)
	}

	words, err := g.words(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, n)
	for range n {
		pw, err := g.render(pattern, words)
		if err != nil {
			return nil, err
		}
		out = append(out, pw)
	}
	return out, nil
}

func (g *Generator) words(ctx context.Context) ([]string, error) {
	words := g.src.Words()
	if len(words) == 0 {
		words = g.src.LoadCache(ctx)
	}
	if len(words) == 0 {
		return nil, ErrMissingWordList
	}
	return words, nil
}

func (g *Generator) render(pattern string, words []string) (string, error) {
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case 'i':
			n, err := g.intn(minNumber, maxNumber)
			if err != nil {
				return "", err
			}
			b.WriteString(strconv.Itoa(n))
		case 's':
			n, err := g.intn(minSymbol, maxSymbol)
			if err != nil {
				return "", err
			}
			b.WriteByte(byte(n))
		case 'w':
			n, err := g.intn(0, len(words)-1)
			if err != nil {
				return "", err
			}
			b.WriteString(words[n])
		}
	}
	return b.String(), nil
}
