// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/feedpassgo/internal/filters"
	"github.com/staranto/feedpassgo/internal/meta"
	"github.com/staranto/feedpassgo/internal/output"
)

var ErrNoCachedWords = errors.New("no cached words")

// WordsCommandAction lists the cached word list, narrowed by --filter, without
// touching the network.
func WordsCommandAction(ctx context.Context, cmd *cli.Command) error {
	p, err := buildProvider(ctx, cmd)
	if err != nil {
		return err
	}

	words := p.LoadCache(ctx)
	if len(words) == 0 {
		return fmt.Errorf("%w at %s, run feedpass fetch first", ErrNoCachedWords, p.Store().Location())
	}

	words, err = filters.FilterWords(words, cmd.String("filter"))
	if err != nil {
		return err
	}

	return output.Words(writer(cmd), words, outputOptions(cmd))
}

// WordsCommandBuilder constructs the cli.Command for "words".
func WordsCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "words",
		Usage:     "list the cached word list",
		UsageText: `feedpass words [@set] [options]`,
		Meta:      meta,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "comma-separated filters on word or len, e.g. len>6,word^Ber",
				Sources: sources("words", "filter"),
			},
		}, append(NewSourceFlags("words"), NewOutputFlags("words")...)...),
		Action:    WordsCommandAction,
	}).Build()
}
