// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

// Package output renders word lists and cache reports as text tables, JSON or
// YAML.
package output
