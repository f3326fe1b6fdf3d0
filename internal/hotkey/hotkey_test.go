package hotkey

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBinding records lifecycle calls and rejects keys listed in bad.
type fakeBinding struct {
	bad      map[string]bool
	bound    []string
	fire     func()
	binds    int
	releases int
	closed   bool
}

func (b *fakeBinding) Probe(keys []string) error {
	for _, k := range keys {
		if b.bad[k] {
			return fmt.Errorf("unknown key %q", k)
		}
	}
	return nil
}

func (b *fakeBinding) Bind(keys []string, fn func()) error {
	if err := b.Probe(keys); err != nil {
		return err
	}
	b.bound = keys
	b.fire = fn
	b.binds++
	return nil
}

func (b *fakeBinding) Release() {
	b.bound = nil
	b.fire = nil
	b.releases++
}

func (b *fakeBinding) Close() { b.closed = true }

func TestParseCombo(t *testing.T) {
	keys, err := ParseCombo("Shift + Space")
	require.NoError(t, err)
	assert.Equal(t, []string{"shift", "space"}, keys)

	keys, err = ParseCombo("f9")
	require.NoError(t, err)
	assert.Equal(t, []string{"f9"}, keys)

	_, err = ParseCombo("")
	assert.ErrorIs(t, err, ErrInvalidSyntax)

	_, err = ParseCombo("shift++space")
	assert.ErrorIs(t, err, ErrInvalidSyntax)
}

func TestRegisterAndFire(t *testing.T) {
	b := &fakeBinding{}
	l := New(b)

	require.NoError(t, l.Register("shift+space"))
	assert.Equal(t, "shift+space", l.Current())
	assert.Equal(t, []string{"shift", "space"}, b.bound)

	b.fire()
	select {
	case <-l.Toggle():
	default:
		t.Fatal("toggle event not delivered")
	}

	// Presses coalesce while one is pending.
	b.fire()
	b.fire()
	<-l.Toggle()
	select {
	case <-l.Toggle():
		t.Fatal("coalesced press delivered twice")
	default:
	}
}

func TestChangeUnchangedIsInformational(t *testing.T) {
	b := &fakeBinding{}
	l := New(b)
	require.NoError(t, l.Register("shift+space"))

	err := l.Change("shift+space")
	assert.ErrorIs(t, err, ErrUnchanged)
	assert.Equal(t, 1, b.binds, "binding untouched")
	assert.Equal(t, 0, b.releases)
	assert.Equal(t, "shift+space", l.Current())
}

func TestChangeInvalidKeepsOldBinding(t *testing.T) {
	b := &fakeBinding{bad: map[string]bool{"hyper": true}}
	l := New(b)
	require.NoError(t, l.Register("shift+space"))

	err := l.Change("hyper+x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSyntax)
	assert.Equal(t, "shift+space", l.Current())
	assert.Equal(t, []string{"shift", "space"}, b.bound, "old binding still armed")
	assert.Equal(t, 0, b.releases)
}

func TestChangeReplacesBinding(t *testing.T) {
	b := &fakeBinding{}
	l := New(b)
	require.NoError(t, l.Register("shift+space"))

	require.NoError(t, l.Change("ctrl+alt+v"))
	assert.Equal(t, "ctrl+alt+v", l.Current())
	assert.Equal(t, []string{"ctrl", "alt", "v"}, b.bound)
	assert.Equal(t, 1, b.releases, "old binding released exactly once")
	assert.Equal(t, 2, b.binds)
}

func TestRegisterInvalidSyntax(t *testing.T) {
	b := &fakeBinding{bad: map[string]bool{"bogus": true}}
	l := New(b)

	err := l.Register("bogus")
	require.True(t, errors.Is(err, ErrInvalidSyntax))
	assert.Equal(t, "", l.Current())
}

func TestClose(t *testing.T) {
	b := &fakeBinding{}
	l := New(b)
	require.NoError(t, l.Register("shift+space"))

	l.Close()
	assert.True(t, b.closed)
	assert.Equal(t, "", l.Current())
}
