// Package hotkey manages the single global show/hide hotkey.
//
// The OS-level hook table is global mutable state, so it is wrapped behind
// the Binding interface with an explicit register/release lifecycle; the
// Listener on top is a small state machine (unregistered → registered →
// unregistered) that owns validation, replacement, and the cross-thread
// toggle handoff. The listener never touches UI-owned state directly; a
// fired hotkey only pushes into the Toggle channel, which the daemon's own
// loop consumes.
package hotkey

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrInvalidSyntax is returned when a combo string cannot be parsed or
// bound. The previous binding, if any, stays active.
var ErrInvalidSyntax = errors.New("invalid hotkey syntax")

// ErrUnchanged is returned by Change when the new combo equals the current
// one. It is informational, not a failure: nothing was re-registered.
var ErrUnchanged = errors.New("hotkey unchanged")

// Binding is a backend that can arm one system-wide key combination.
// Implementations own the OS hook table; only one combination is bound at
// a time.
type Binding interface {
	// Probe validates that keys form a bindable combination without
	// committing a registration.
	Probe(keys []string) error

	// Bind arms the combination and invokes fn on every press. Bind
	// replaces nothing; callers Release first.
	Bind(keys []string, fn func()) error

	// Release disarms the current combination, if any.
	Release()

	// Close releases and shuts the backend down.
	Close()
}

// ParseCombo splits a combo string like "shift+space" into its key tokens,
// lowercased. An empty string or empty token is a syntax error.
func ParseCombo(combo string) ([]string, error) {
	parts := strings.Split(combo, "+")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSyntax, combo)
		}
		keys = append(keys, p)
	}
	return keys, nil
}

// Listener binds the global hotkey and reports presses on Toggle.
type Listener struct {
	binding Binding
	toggle  chan struct{}

	mu    sync.Mutex
	combo string // "" = unregistered
}

// New returns a Listener over binding. No hotkey is registered yet.
func New(binding Binding) *Listener {
	return &Listener{
		binding: binding,
		toggle:  make(chan struct{}, 1),
	}
}

// Toggle is the channel a hotkey press fires into. Sends are non-blocking;
// a press while one is already pending coalesces.
func (l *Listener) Toggle() <-chan struct{} { return l.toggle }

// Current returns the currently registered combo, or "".
func (l *Listener) Current() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.combo
}

// Register binds combo. Any previous binding is released first.
func (l *Listener) Register(combo string) error {
	keys, err := ParseCombo(combo)
	if err != nil {
		return err
	}
	if err := l.binding.Probe(keys); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSyntax, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registerLocked(combo, keys)
}

// Change replaces the current binding with combo.
//
// An unchanged combo returns ErrUnchanged without touching the binding.
// The new combo is probed before the old binding is released, so a syntax
// failure leaves the previous hotkey active and unaffected.
func (l *Listener) Change(combo string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if combo == l.combo {
		return ErrUnchanged
	}
	keys, err := ParseCombo(combo)
	if err != nil {
		return err
	}
	if err := l.binding.Probe(keys); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSyntax, err)
	}
	return l.registerLocked(combo, keys)
}

// registerLocked releases any current binding and arms keys.
// Must be called with l.mu held.
func (l *Listener) registerLocked(combo string, keys []string) error {
	if l.combo != "" {
		l.binding.Release()
		l.combo = ""
	}
	if err := l.binding.Bind(keys, l.fire); err != nil {
		return fmt.Errorf("bind %q: %w", combo, err)
	}
	l.combo = combo
	return nil
}

func (l *Listener) fire() {
	select {
	case l.toggle <- struct{}{}:
	default:
	}
}

// Close releases the binding and shuts down the backend.
func (l *Listener) Close() {
	l.mu.Lock()
	l.combo = ""
	l.mu.Unlock()
	l.binding.Close()
}
