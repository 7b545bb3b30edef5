// Package logger provides a configurable logger shared by the playground and
// the underlying gnark components.
//
// The root logger defined by default uses github.com/rs/zerolog with a console
// writer. Changes made through Set, SetOutput and Disable are mirrored to
// gnark's own logger so that compiler and prover logs land in the same sink.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/consensys/gnark/debug"
	gnarklogger "github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if !debug.Debug && strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}

	gnarklogger.Set(logger)
}

// SetOutput changes the output of the global logger
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
	gnarklogger.Set(logger)
}

// Set allows a user to override the global logger
func Set(l zerolog.Logger) {
	logger = l
	gnarklogger.Set(logger)
}

// Disable disables logging
func Disable() {
	logger = zerolog.Nop()
	gnarklogger.Disable()
}

// Logger returns the global logger
func Logger() zerolog.Logger {
	return logger
}
