// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// InitLogger sets up Apex with a custom handler and a log level from the
// FEEDPASS_LOG env variable.
func InitLogger() {
	level := strings.ToUpper(os.Getenv("FEEDPASS_LOG"))
	if level == "" {
		level = "ERROR"
	}
	log.SetHandler(&CustomHandler{})
	log.SetLevelFromString(level)
}

// SetVerbosity lowers the global level for --verbose (warnings) and --debug.
// It never raises a level that FEEDPASS_LOG already lowered.
func SetVerbosity(verbose, debug bool) {
	want := log.ErrorLevel
	switch {
	case debug:
		want = log.DebugLevel
	case verbose:
		want = log.WarnLevel
	}

	if l, ok := log.Log.(*log.Logger); ok && want < l.Level {
		l.Level = want
	}
}

// CustomHandler formats log messages and writes them to Writer, or stderr when
// Writer is nil. Stdout is reserved for command output.
type CustomHandler struct {
	Writer io.Writer
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	w := h.Writer
	if w == nil {
		w = os.Stderr
	}

	timestamp := e.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	level := strings.ToUpper(e.Level.String())

	var b strings.Builder
	fmt.Fprintf(&b, "%s %.1s %s", timestamp.Format("2006-01-02 15:04:05"), level, e.Message)
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
