// Package qc16 holds the version and the logging setup shared by the
// commands. The code itself lives in package fec; stream and frame build
// byte stream and packet transports on top of it.
package qc16

import (
	"io"

	"github.com/op/go-logging"
)

var logFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`)

// SetupLogging sends all module loggers to w, at DEBUG when verbose and INFO
// otherwise.
func SetupLogging(w io.Writer, verbose bool) {
	backend := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), logFormat))
	if verbose {
		backend.SetLevel(logging.DEBUG, "")
	} else {
		backend.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(backend)
}
