// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

// Package aws contains helpers for loading AWS SDK v2 configuration and
// constructing the S3 client used by the S3 word list cache.
package aws
