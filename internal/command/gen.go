// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/feedpassgo/internal/meta"
	"github.com/staranto/feedpassgo/internal/password"
)

// GenCommandAction builds the word list and prints --count passwords rendered
// from --pattern.
func GenCommandAction(ctx context.Context, cmd *cli.Command) error {
	pattern := cmd.String("pattern")
	if pattern == "" {
		pattern = password.DefaultPattern
	}

	// Reject a bad pattern before any network or cache work.
	if err := password.ValidatePattern(pattern); err != nil {
		return err
	}

	p, err := buildProvider(ctx, cmd)
	if err != nil {
		return err
	}
	words, err := p.Build(ctx, cmd.Bool("prefer-cache"))
	if err != nil {
		return err
	}
	log.Debugf("word list has %d words, fetched=%t", len(words), p.Fetched())

	passwords, err := password.New(p).GenerateN(ctx, pattern, cmd.Int("count"))
	if err != nil {
		return err
	}

	w := writer(cmd)
	for _, pw := range passwords {
		if _, err := fmt.Fprintln(w, pw); err != nil {
			return err
		}
	}
	return nil
}

// GenCommandBuilder constructs the cli.Command for "gen".
func GenCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "gen",
		Usage:     "generate passwords",
		UsageText: `feedpass gen [@set] [options]`,
		Meta:      meta,
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "number of passwords to generate",
				Sources: sources("gen", "count"),
				Value:   1,
				Validator: func(value int) error {
					return FlagValidators(value, PositiveValidator)
				},
			},
			&cli.StringFlag{
				Name:    "pattern",
				Aliases: []string{"p"},
				Usage:   "control pattern: w word, i number 1-999, s symbol",
				Sources: sources("gen", "pattern"),
				Value:   password.DefaultPattern,
				Validator: func(value string) error {
					if value == "" {
						return nil
					}
					return FlagValidators(value, PatternValidator)
				},
			},
			&cli.BoolFlag{
				Name:        "prefer-cache",
				Aliases:     []string{"k"},
				Usage:       "use a non-empty cache without fetching",
				Sources:     sources("gen", "prefer-cache"),
				HideDefault: true,
			},
		}, NewSourceFlags("gen")...),
		Action: GenCommandAction,
	}).Build()
}
