// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/feedpassgo/internal/cacheutil"
	"github.com/staranto/feedpassgo/internal/command"
	"github.com/staranto/feedpassgo/internal/config"
	mylog "github.com/staranto/feedpassgo/internal/log"
	"github.com/staranto/feedpassgo/internal/version"
)

var ctx = context.Background()

// defaultCommand runs when no subcommand is named.
const defaultCommand = "gen"

var commands = []string{"fetch", "gen", "purge", "words", "help"}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	args := mangleArguments(os.Args)

	// Short-circuit --version/-v.
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	// Best-effort: pre-create cache directory when caching is enabled.
	if _, _, err := cacheutil.EnsureBaseDir(); err != nil {
		// Non-fatal: print to stderr and continue.
		fmt.Fprintln(os.Stderr, err)
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}

// mangleArguments inserts the default subcommand when none is given and
// expands an @set into the argument list stored under <cmd>.<set> in the
// config file. Without an explicit @set, <cmd>.defaults is used if present.
func mangleArguments(args []string) []string {
	if len(args) < 2 {
		args = []string{args[0], defaultCommand}
	}

	// Short-circuit for --help/-h and --version/-v ahead of any subcommand.
	switch args[1] {
	case "--help", "-h", "--version", "-v":
		return args[:2]
	}

	if !slices.Contains(commands, args[1]) {
		args = append([]string{args[0], defaultCommand}, args[1:]...)
	}

	// We know the first two args are going to be the executable and command.
	preamble := make([]string, 2)
	copy(preamble, args[:2])

	// If help is requested, just keep the preamble and add --help flag.
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return append(preamble, "--help")
		}
	}

	// See if there is a @set specified. If so, that becomes the insertion point
	// and the @set entry is removed from args.
	idx := 2
	set := "defaults"
	rest := append([]string{}, args[2:]...)
	for i, a := range rest {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			idx += i
			rest = append(rest[:i], rest[i+1:]...)
			break
		}
	}
	args = append(preamble, rest...)

	setArgs, _ := config.GetStringSlice(args[1] + "." + set)
	for _, arg := range setArgs {
		parts := strings.Fields(arg)
		args = append(args[:idx], append(parts, args[idx:]...)...)
		idx += len(parts)
	}

	log.Debugf("idx=%d, set=%s, args=%v", idx, set, args)
	return args
}
