package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// stderrLogger writes structured log lines to stderr for verbose mode.
type stderrLogger struct{}

// NewStderrLogger creates a logger that writes to stderr.
func NewStderrLogger() *stderrLogger {
	return &stderrLogger{}
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l *stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l *stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l *stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	var parts []string

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", key, fields[key]))
	}

	line := fmt.Sprintf("[%s] %s", level, msg)
	if len(parts) > 0 {
		line += " " + strings.Join(parts, " ")
	}

	fmt.Fprintln(os.Stderr, line)
}
