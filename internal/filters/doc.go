// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

// Package filters implements the --filter expressions used to narrow word
// lists, such as "len>6,word^Ber".
package filters
