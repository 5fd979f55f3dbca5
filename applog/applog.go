/*
File    : bhasa/applog/applog.go
*/

// Package applog configures the structured logger shared by the CLI and
// the interpreter stages: github.com/sirupsen/logrus formatted with
// github.com/t-tomalak/logrus-easy-formatter, grounded on the golox
// manifest which depends on the same pair for the same purpose.
package applog

import (
	"os"

	"github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"
)

// New builds a logger writing to stderr, used for one debug line per stage
// transition and one warn line per runtime diagnostic. Default level is Warn; verbose raises it to Debug
// (spec_full §2 logging module), matching the CLI's -v/--verbose flag.
func New(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&easy.Formatter{
		TimestampFormat: "15:04:05",
		LogFormat:       "[%lvl%] %time% %msg%\n",
	})

	level := logrus.WarnLevel
	if verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	return logger
}
