// Package poller runs the clipboard observation tick: read, classify,
// dedup, record. It owns no goroutine of its own; the daemon loop calls
// Tick on its timer so that all history mutation stays on one thread of
// control.
package poller

import (
	"log/slog"
	"time"

	"go.klb.dev/kovak/internal/clip"
	"go.klb.dev/kovak/internal/entry"
	"go.klb.dev/kovak/internal/history"
)

// DefaultInterval is the poll period.
const DefaultInterval = time.Second

// Poller classifies clipboard snapshots into history entries.
type Poller struct {
	backend  clip.Backend
	store    *history.Store
	onAppend func(e entry.Entry)
}

// New returns a Poller. onAppend is invoked for every entry the tick
// appends to the history (the presentation layer adds its rows there);
// it may be nil.
func New(backend clip.Backend, store *history.Store, onAppend func(entry.Entry)) *Poller {
	return &Poller{backend: backend, store: store, onAppend: onAppend}
}

// Tick performs one poll: read the clipboard, classify the content, and
// run it through the history dedup rules. Snapshots with no actionable
// content skip the tick entirely.
func (p *Poller) Tick() {
	snap, err := p.backend.Read()
	if err != nil {
		slog.Error("clipboard read failed", "err", err)
		return
	}
	if snap.Empty() {
		return
	}

	e, ok := entry.Classify(snap)
	if !ok {
		return
	}
	if !p.store.Observe(e) {
		return
	}

	slog.Debug("clipboard entry recorded", "kind", e.Kind, "display", preview(e.Display))
	if p.onAppend != nil {
		p.onAppend(e)
	}
}

// preview truncates long display strings for debug logging.
func preview(s string) string {
	if len(s) > 120 {
		return s[:120] + "…"
	}
	return s
}
