// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package wordlist

import (
	"errors"
	"fmt"
)

// Sentinel errors. ErrConfig is returned to callers; ErrFetch and ErrParse
// are absorbed by Provider.Build and only logged.
var (
	ErrConfig = errors.New("invalid word list config")
	ErrFetch  = errors.New("word list fetch failed")
	ErrParse  = errors.New("word list parse failed")
)

// ConfigError names the offending Config field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrConfig, e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrConfig) match any ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
