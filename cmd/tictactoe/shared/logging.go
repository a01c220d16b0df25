// Package shared holds helpers common to the CLI commands.
package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger configures a console logger on stderr, so diagnostics never mix
// with the game transcript on stdout.
func NewLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level: level,
	})
}
