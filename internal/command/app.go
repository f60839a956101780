// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/feedpassgo/internal/config"
	"github.com/staranto/feedpassgo/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// The arg[1] immediately following the binary (arg[0]) is the feedpass
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	cfg, _ := config.Load()
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		cfg.Namespace = args[1]
		config.Config.Namespace = args[1]
	}

	meta := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}

	app := &cli.Command{
		Name:  "feedpass",
		Usage: "passwords from news feed words",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "feedpass version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		FetchCommandBuilder(meta),
		GenCommandBuilder(meta),
		PurgeCommandBuilder(meta),
		WordsCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
