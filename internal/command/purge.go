// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/feedpassgo/internal/cacheutil"
	"github.com/staranto/feedpassgo/internal/meta"
)

// PurgeCommandAction removes stale files from the cache directory and, with
// --all, the configured word list cache itself.
func PurgeCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := writer(cmd)

	removed, err := cacheutil.Purge(cmd.Int("hours"))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "removed %d stale cache files\n", removed)

	if !cmd.Bool("all") {
		return nil
	}

	p, err := buildProvider(ctx, cmd)
	if err != nil {
		return err
	}
	if err := p.Store().Remove(ctx); err != nil {
		return err
	}
	fmt.Fprintf(w, "removed %s\n", p.Store().Location())

	return nil
}

// PurgeCommandBuilder constructs the cli.Command for "purge".
func PurgeCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "purge",
		Usage:     "remove cached word lists",
		UsageText: `feedpass purge [options]`,
		Meta:      meta,
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "also remove the configured word list cache",
				HideDefault: true,
			},
			&cli.IntFlag{
				Name:    "hours",
				Usage:   "remove cache files older than this many hours, 0 disables",
				Sources: sources("purge", "hours"),
				Value:   24 * 7,
				Validator: func(value int) error {
					return FlagValidators(value, NonNegativeValidator)
				},
			},
		}, NewSourceFlags("purge")...),
		Action: PurgeCommandAction,
	}).Build()
}
