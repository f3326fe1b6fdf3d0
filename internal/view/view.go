// Package view holds the daemon-side presentation model: the ordered list
// of display rows, their highlight marks, and the window visibility flag.
// It is what the IPC responses expose to CLI tools; actual rendering is out
// of scope.
package view

import (
	"sync"

	"go.klb.dev/kovak/internal/search"
)

// Row is one presentation row.
type Row struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// View is the row model. Each appended entry contributes its display text
// plus one blank spacer row between entries.
type View struct {
	mu      sync.RWMutex
	rows    []Row
	visible bool
}

// New returns an empty View. The window starts visible.
func New() *View {
	return &View{visible: true}
}

// Append adds a display row followed by a blank spacer row.
func (v *View) Append(display string) {
	v.mu.Lock()
	v.rows = append(v.rows, Row{Text: display}, Row{})
	v.mu.Unlock()
}

// Rows returns a copy of the current rows.
func (v *View) Rows() []Row {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]Row, len(v.rows))
	copy(out, v.rows)
	return out
}

// Clear removes all rows and any highlight marks.
func (v *View) Clear() {
	v.mu.Lock()
	v.rows = nil
	v.mu.Unlock()
}

// Find marks every row matching query and returns the index of the first
// match, or -1. Spacer rows participate like any other row: the empty
// query matches them too.
func (v *View) Find(query string) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	texts := make([]string, len(v.rows))
	for i, r := range v.rows {
		texts[i] = r.Text
	}
	res := search.Run(texts, query)
	for i := range v.rows {
		v.rows[i].Match = res.Marks[i]
	}
	return res.First
}

// ResetFind clears all highlight marks.
func (v *View) ResetFind() {
	v.mu.Lock()
	for i := range v.rows {
		v.rows[i].Match = false
	}
	v.mu.Unlock()
}

// Toggle flips the visibility flag and returns the new state.
func (v *View) Toggle() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visible = !v.visible
	return v.visible
}

// Visible reports the current visibility flag.
func (v *View) Visible() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.visible
}
