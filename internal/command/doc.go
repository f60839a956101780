// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

// Package command defines the CLI command set for feedpass. It wires flags,
// validators and actions for the gen, fetch, words and purge subcommands.
package command
