package main

import (
	"fmt"
	"time"

	"go.klb.dev/kovak/internal/ipc"
	"go.klb.dev/kovak/internal/message"
	"go.klb.dev/kovak/internal/wire"
)

const replyTimeout = 5 * time.Second

// daemonRequest sends one message to the running daemon over the IPC
// socket and returns its reply. ERROR replies become Go errors.
func daemonRequest(msg *message.Message) (*message.Message, error) {
	if !ipc.IsRunning() {
		return nil, fmt.Errorf("no kovak daemon running (socket %s); start one with 'kovak run'", ipc.SocketPath())
	}
	conn, err := ipc.Dial()
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", ipc.SocketPath(), err)
	}
	wc := wire.New(conn)
	defer wc.Close()

	if err := wc.WriteMsg(msg); err != nil {
		return nil, fmt.Errorf("send: %w", err)
	}

	wc.SetReadDeadline(replyTimeout)
	resp, err := wc.ReadMsg()
	if err != nil {
		return nil, fmt.Errorf("read reply: %w", err)
	}
	if resp.Type == message.TypeError {
		return nil, fmt.Errorf("%s", resp.Error)
	}
	return resp, nil
}
