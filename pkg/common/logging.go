package common

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the diagnostics logger used by the command tools. Output
// goes to w; debug raises the level from warn to debug.
func NewLogger(w io.Writer, debug bool, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(logrus.WarnLevel)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	switch strings.ToLower(format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger
}
