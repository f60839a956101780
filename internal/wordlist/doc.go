// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

// Package wordlist builds the word list used for passwords. Words are
// harvested from the description elements of an RSS feed, normalized, and
// cached so that later runs work offline.
package wordlist
