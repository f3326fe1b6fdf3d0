package wire

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/kovak/internal/message"
)

func TestRoundTripOverPipe(t *testing.T) {
	a, b := net.Pipe()
	ca, cb := New(a), New(b)
	defer ca.Close()
	defer cb.Close()

	go func() {
		_ = ca.WriteMsg(&message.Message{Type: message.TypeSearch, Query: "apple"})
		_ = ca.WriteMsg(&message.Message{Type: message.TypeClear})
	}()

	msg, err := cb.ReadMsg()
	require.NoError(t, err)
	assert.Equal(t, message.TypeSearch, msg.Type)
	assert.Equal(t, "apple", msg.Query)

	// One line per message: the second read sees the second message, not
	// trailing bytes of the first.
	msg, err = cb.ReadMsg()
	require.NoError(t, err)
	assert.Equal(t, message.TypeClear, msg.Type)
}
