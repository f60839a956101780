// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the build version, set with
// -ldflags "-X github.com/staranto/feedpassgo/internal/version.Version=...".
package version

var Version = "0.1.0-dev"
