// Package notify surfaces user-facing messages from the daemon: hotkey
// change errors get an error dialog, informational outcomes get a notice.
// A slog-only fallback covers headless hosts and --no-dialogs.
package notify

import (
	"log/slog"

	"github.com/ncruces/zenity"
)

// Notifier delivers user-visible messages.
type Notifier interface {
	// Info reports a non-error outcome (e.g. "hotkey unchanged").
	Info(msg string)

	// Error reports a failure the user must act on (e.g. invalid hotkey).
	Error(msg string)
}

// Dialogs shows desktop dialogs via zenity. Failures to display fall back
// to the log.
type Dialogs struct{}

func (Dialogs) Info(msg string) {
	if err := zenity.Info(msg, zenity.Title("Kovak"), zenity.Icon(zenity.InfoIcon)); err != nil {
		slog.Info(msg, "dialog_err", err)
	}
}

func (Dialogs) Error(msg string) {
	if err := zenity.Error(msg, zenity.Title("Kovak"), zenity.Icon(zenity.ErrorIcon)); err != nil {
		slog.Error(msg, "dialog_err", err)
	}
}

// Log writes messages to slog only.
type Log struct{}

func (Log) Info(msg string)  { slog.Info(msg) }
func (Log) Error(msg string) { slog.Error(msg) }
