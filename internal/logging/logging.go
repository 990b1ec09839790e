// Package logging builds the logrus logger used for diagnostics. Logs always
// go to stderr so that stdout carries only command output.
package logging

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// New returns a text-formatted logger writing to w at the named level.
// An empty level means "warning".
func New(w io.Writer, level string) (*log.Logger, error) {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})

	if strings.TrimSpace(level) == "" {
		level = "warning"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}
