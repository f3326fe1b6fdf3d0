// Package clip provides access to the system clipboard via
// golang.design/x/clipboard, with a no-op fallback for headless
// environments (containers, CI, servers without a display).
package clip

import (
	"log/slog"
	"strings"

	"golang.design/x/clipboard"

	"go.klb.dev/kovak/internal/entry"
)

// Backend is the interface the poller and restore paths use.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// Read returns the current clipboard content. An empty snapshot means
	// the clipboard holds nothing Kovak can classify.
	Read() (entry.Snapshot, error)

	// WriteText sets the clipboard to plain text.
	WriteText(text string) error

	// WriteImage sets the clipboard to PNG-encoded image data.
	WriteImage(pixels []byte) error

	// WriteURLs sets the clipboard to a list of URL strings. The OS
	// clipboard API exposes text and image formats only, so the list is
	// written as newline-joined text; the typed modality is preserved in
	// the history, not on the wire.
	WriteURLs(urls []string) error

	// Close releases any resources held by the backend.
	Close()
}

// New returns the system clipboard backend, or a headless no-op backend if
// the display environment is unavailable. clipboard.Init is called here
// rather than in init() so that CLI sub-commands (history, status, search)
// don't trigger the warning.
func New() Backend {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable, running headless", "err", err)
		return &headlessBackend{}
	}
	return &systemBackend{}
}

type systemBackend struct{}

func (b *systemBackend) Name() string { return "system clipboard" }

func (b *systemBackend) Read() (entry.Snapshot, error) {
	return entry.Snapshot{
		Image: clipboard.Read(clipboard.FmtImage),
		Text:  string(clipboard.Read(clipboard.FmtText)),
	}, nil
}

func (b *systemBackend) WriteText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (b *systemBackend) WriteImage(pixels []byte) error {
	clipboard.Write(clipboard.FmtImage, pixels)
	return nil
}

func (b *systemBackend) WriteURLs(urls []string) error {
	clipboard.Write(clipboard.FmtText, []byte(strings.Join(urls, "\n")))
	return nil
}

func (b *systemBackend) Close() {}
