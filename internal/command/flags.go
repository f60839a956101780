// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/feedpassgo/internal/config"
	"github.com/staranto/feedpassgo/internal/wordlist"
)

func init() {
	cfg, _ = config.Load()
}

var cfg config.Type

// sources builds the value chain for a flag: FEEDPASS_<NAME> first, then the
// namespaced config key, then the global config key.
func sources(ns, name string) cli.ValueSourceChain {
	env := "FEEDPASS_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	return cli.NewValueSourceChain(
		cli.EnvVar(env),
		yaml.YAML(ns+"."+name, altsrc.StringSourcer(cfg.Source)),
		yaml.YAML(name, altsrc.StringSourcer(cfg.Source)),
	)
}

// NewGlobalFlags returns the flags shared by every subcommand. ns is the
// subcommand name and is used as the config namespace.
func NewGlobalFlags(ns string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "log debug messages to stderr",
			Sources:     cli.NewValueSourceChain(cli.EnvVar("FEEDPASS_DEBUG")),
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"V"},
			Usage:       "log warnings, such as cache fallbacks, to stderr",
			Sources:     sources(ns, "verbose"),
			HideDefault: true,
		},
	}
	return
}

// NewSourceFlags returns the flags that shape the word list provider.
func NewSourceFlags(ns string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "cache",
			Aliases: []string{"C"},
			Usage:   "word list cache file or s3://bucket/key",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("FEEDPASS_CACHE_PATH"),
				yaml.YAML(ns+".cache", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("cache", altsrc.StringSourcer(cfg.Source)),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.DurationFlag{
			Name:    "fetch-timeout",
			Usage:   "limit for the whole feed download",
			Sources: sources(ns, "fetch-timeout"),
			Value:   wordlist.DefaultFetchTimeout,
		},
		&cli.IntFlag{
			Name:    "max",
			Usage:   "longest word to keep. Overrides the preset",
			Sources: sources(ns, "max"),
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
		&cli.IntFlag{
			Name:    "min",
			Usage:   "shortest word to keep. Overrides the preset",
			Sources: sources(ns, "min"),
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
		&cli.StringFlag{
			Name:    "preset",
			Aliases: []string{"P"},
			Usage:   "word source preset, one of " + strings.Join(wordlist.PresetNames, ", "),
			Sources: sources(ns, "preset"),
			Value:   "de",
			Validator: func(value string) error {
				return FlagValidators(value, PresetValidator)
			},
		},
		&cli.IntFlag{
			Name:    "redirects",
			Usage:   "maximum redirects to follow, 0 disables",
			Sources: sources(ns, "redirects"),
			Value:   wordlist.DefaultMaxRedirects,
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
		&cli.StringFlag{
			Name:    "source",
			Aliases: []string{"s"},
			Usage:   "RSS or XML feed URL. Overrides the preset",
			Sources: sources(ns, "source"),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "connect timeout",
			Sources: sources(ns, "timeout"),
			Value:   wordlist.DefaultConnectTimeout,
		},
	}
	return
}

// NewOutputFlags returns the flags that control how results are printed.
func NewOutputFlags(ns string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored table output",
			Sources: sources(ns, "color"),
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format, one of text, json, yaml",
			Sources: sources(ns, "output"),
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
	}
	return
}
