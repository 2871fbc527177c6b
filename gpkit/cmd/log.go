package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.RFC3339,
	Prefix:          "gpkit",
})

func setLogLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(lvl)
	return nil
}

func setLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

func logf(format string, args ...any) {
	logger.Infof(format, args...)
}

func debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}
