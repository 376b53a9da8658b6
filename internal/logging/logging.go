// Package logging builds the process logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pageza/mess-menu/backend/config"
)

// New returns a logger writing to stdout. Production and CI get JSON output;
// an unparsable level falls back to info.
func New(env config.Environment, level string) *logrus.Logger {
	return NewWithOutput(os.Stdout, env, level)
}

// NewWithOutput is New with an explicit destination
func NewWithOutput(out io.Writer, env config.Environment, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if env.Structured() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger
}
