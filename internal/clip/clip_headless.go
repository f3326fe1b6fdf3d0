package clip

import "go.klb.dev/kovak/internal/entry"

// headlessBackend is a no-op clipboard backend for environments without a
// display server. Reads are always empty and writes are silently discarded.
type headlessBackend struct{}

func (b *headlessBackend) Name() string                  { return "headless (no-op)" }
func (b *headlessBackend) Read() (entry.Snapshot, error) { return entry.Snapshot{}, nil }
func (b *headlessBackend) WriteText(string) error        { return nil }
func (b *headlessBackend) WriteImage([]byte) error       { return nil }
func (b *headlessBackend) WriteURLs([]string) error      { return nil }
func (b *headlessBackend) Close()                        {}
