// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/feedpassgo/internal/meta"
	"github.com/staranto/feedpassgo/internal/output"
	"github.com/staranto/feedpassgo/internal/wordlist"
)

// FetchCommandAction forces a fresh build and reports what ended up in the
// cache.
func FetchCommandAction(ctx context.Context, cmd *cli.Command) error {
	p, err := buildProvider(ctx, cmd)
	if err != nil {
		return err
	}

	words, err := p.Build(ctx, false)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return fmt.Errorf("no words available from %s or %s", p.Config().SourceURL, p.Store().Location())
	}

	report := output.Report{
		Location: p.Store().Location(),
		Words:    len(words),
		Fetched:  p.Fetched(),
	}
	if entry, err := p.Store().Read(ctx); err == nil {
		report.Location = entry.Location
		report.Size = entry.Size
		report.ModTime = entry.ModTime
	} else {
		log.WithError(err).Debug("cache not readable after fetch")
		if data, err := wordlist.Encode(words); err == nil {
			report.Size = int64(len(data))
		}
	}

	return output.CacheReport(writer(cmd), report, outputOptions(cmd))
}

// FetchCommandBuilder constructs the cli.Command for "fetch".
func FetchCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "fetch",
		Usage:     "fetch the feed and refresh the word list cache",
		UsageText: `feedpass fetch [@set] [options]`,
		Meta:      meta,
		Flags:     append(NewSourceFlags("fetch"), NewOutputFlags("fetch")...),
		Action:    FetchCommandAction,
	}).Build()
}
