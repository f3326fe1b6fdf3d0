// Package ipc provides the local Unix-socket channel CLI tools use to talk
// to a running kovak daemon. The daemon listens on the socket; sub-commands
// probe for it and fail with a clear error if no daemon is running.
package ipc

import (
	"net"
	"os"
	"path/filepath"
)

// SocketPath returns the path for the IPC socket.
//
//   - $KOVAK_SOCKET if set
//   - $XDG_RUNTIME_DIR/kovak.sock when available
//   - $TMPDIR/kovak.sock otherwise
func SocketPath() string {
	if s := os.Getenv("KOVAK_SOCKET"); s != "" {
		return s
	}
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "kovak.sock")
	}
	return filepath.Join(os.TempDir(), "kovak.sock")
}

// IsRunning reports whether a kovak daemon appears to be listening on the
// IPC socket. It does a cheap dial-and-close; no data is exchanged.
func IsRunning() bool {
	c, err := net.Dial("unix", SocketPath())
	if err != nil {
		return false
	}
	_ = c.Close()
	return true
}

// Listen creates and returns a net.Listener on the IPC socket path,
// removing any stale socket file first.
func Listen() (net.Listener, error) {
	path := SocketPath()
	// Remove stale socket from a previous (crashed) run.
	_ = os.Remove(path)
	return net.Listen("unix", path)
}

// Dial connects to the IPC socket.
func Dial() (net.Conn, error) {
	return net.Dial("unix", SocketPath())
}
