package hotkey

import (
	"fmt"

	hook "github.com/robotn/gohook"
)

// GohookBinding binds global hotkeys through the robotn/gohook OS keyboard
// hook. The hook table is process-global, so only one GohookBinding should
// exist; replacing a combo tears the whole hook down and re-arms it, which
// is also how a hotkey change discards the old listener instance.
type GohookBinding struct {
	armed bool
}

// NewGohookBinding returns an unarmed gohook-backed Binding.
func NewGohookBinding() *GohookBinding {
	return &GohookBinding{}
}

// Probe checks every key token against gohook's keycode table. This is the
// register/immediate-unregister equivalent: gohook resolves tokens through
// the same table at registration time, so an unknown token here is exactly
// a registration failure there, without disturbing the live hook.
func (b *GohookBinding) Probe(keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("empty key combination")
	}
	for _, k := range keys {
		if _, ok := hook.Keycode[k]; !ok {
			return fmt.Errorf("unknown key %q", k)
		}
	}
	return nil
}

// Bind registers keys and starts the blocking event pump on its own
// goroutine. The callback runs on the pump goroutine; callers must not
// mutate UI state in it.
func (b *GohookBinding) Bind(keys []string, fn func()) error {
	if err := b.Probe(keys); err != nil {
		return err
	}
	if b.armed {
		b.Release()
	}
	hook.Register(hook.KeyDown, keys, func(hook.Event) { fn() })
	events := hook.Start()
	go func() {
		<-hook.Process(events)
	}()
	b.armed = true
	return nil
}

// Release stops the event pump. hook.End also clears the registered
// callbacks, so a subsequent Bind starts from a clean table.
func (b *GohookBinding) Release() {
	if !b.armed {
		return
	}
	hook.End()
	b.armed = false
}

// Close releases the hook.
func (b *GohookBinding) Close() { b.Release() }
