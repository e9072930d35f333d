package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLogLevel is used when --log-level is not given.
const DefaultLogLevel = "warn"

// NewLogger creates the CLI logger writing to w.
func NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "sysgen",
		Level:  log.WarnLevel,
	})
}

// ParseLevel maps a --log-level value to a log level.
func ParseLevel(value string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("invalid log level %q (must be debug, info, warn or error)", value)
	}
}
