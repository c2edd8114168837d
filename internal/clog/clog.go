// Package clog is the chess core's single logging entry point: every other
// package that needs to log calls clog.Get() rather than configuring
// github.com/op/go-logging itself, so format and backend stay consistent
// across the whole module.
package clog

import (
	"os"

	"github.com/op/go-logging"
)

var log = newLogger()

func newLogger() *logging.Logger {
	l := logging.MustGetLogger("chesscore")

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{shortfunc} ▶ %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, formatter)

	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)

	return l
}

// Get returns the shared logger for the chess core.
func Get() *logging.Logger {
	return log
}

// SetLevel adjusts the minimum level the shared logger emits, e.g. for a
// CLI's -v flag.
func SetLevel(level logging.Level) {
	logging.SetLevel(level, "chesscore")
}
