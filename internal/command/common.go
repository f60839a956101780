// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/feedpassgo/internal/config"
	mylog "github.com/staranto/feedpassgo/internal/log"
	"github.com/staranto/feedpassgo/internal/meta"
	"github.com/staranto/feedpassgo/internal/output"
	"github.com/staranto/feedpassgo/internal/wordlist"
)

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr feedpass-<subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "feedpass-"+subcmd)
			c.Stdout = writer(cmd)
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// CommandBuilder constructs a cli.Command for a subcommand using a consistent
// pattern. The builder wires metadata, adds the tldr and global flags, and
// applies --verbose and --debug before the action runs.
type CommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (b *CommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      b.Name,
		Usage:     b.Usage,
		UsageText: b.UsageText,
		Metadata: map[string]any{
			"meta": b.Meta,
		},
		Flags: append(b.Flags, append([]cli.Flag{
			tldrFlag,
		}, NewGlobalFlags(b.Name)...)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			mylog.SetVerbosity(c.Bool("verbose"), c.Bool("debug"))
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			m := GetMeta(c)
			if len(m.Args) > 1 {
				log.Debugf("Executing action for %v", m.Args[1:])
			}
			if ShortCircuitTLDR(ctx, c, b.Name) {
				return nil
			}
			return b.Action(ctx, c)
		},
	}
}

var tldrFlag = &cli.BoolFlag{
	Name:        "tldr",
	Usage:       "show tldr page",
	Hidden:      !pathHas("tldr"),
	HideDefault: true,
}

// pathHas checks if the given executable is on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}

// writer is where command output goes. Tests swap the root Writer.
func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// outputOptions collects --output and --color.
func outputOptions(cmd *cli.Command) output.Options {
	cols, _ := config.GetInt(cmd.Name+".columns", 4)
	return output.Options{
		Format:  cmd.String("output"),
		Color:   cmd.Bool("color"),
		Columns: cols,
	}
}

// providerConfig starts from the --preset and applies any explicit overrides.
func providerConfig(cmd *cli.Command) (wordlist.Config, error) {
	wc, err := wordlist.Preset(cmd.String("preset"), cmd.String("cache"))
	if err != nil {
		return wordlist.Config{}, err
	}

	if s := cmd.String("source"); s != "" {
		wc.SourceURL = s
		wc.CacheOnly = false
	}
	if cmd.IsSet("min") {
		wc.MinWordLength = cmd.Int("min")
	}
	if cmd.IsSet("max") {
		wc.MaxWordLength = cmd.Int("max")
	}
	wc.MaxRedirects = cmd.Int("redirects")
	wc.ConnectTimeout = cmd.Duration("timeout")
	wc.FetchTimeout = cmd.Duration("fetch-timeout")

	return wc, nil
}

// buildProvider constructs a Provider from the command's flags.
func buildProvider(ctx context.Context, cmd *cli.Command) (*wordlist.Provider, error) {
	wc, err := providerConfig(cmd)
	if err != nil {
		return nil, err
	}
	log.Debugf("word list config: %+v", wc)

	return wordlist.NewProvider(ctx, wc, wordlist.WithLogger(log.Log))
}
