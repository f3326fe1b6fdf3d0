package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/kovak/internal/clip"
	"go.klb.dev/kovak/internal/entry"
	"go.klb.dev/kovak/internal/history"
	"go.klb.dev/kovak/internal/hotkey"
	"go.klb.dev/kovak/internal/ipc"
	"go.klb.dev/kovak/internal/message"
	"go.klb.dev/kovak/internal/notify"
	"go.klb.dev/kovak/internal/poller"
	"go.klb.dev/kovak/internal/restore"
	"go.klb.dev/kovak/internal/settings"
	"go.klb.dev/kovak/internal/view"
	"go.klb.dev/kovak/internal/wire"
)

func newRunCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the clipboard history daemon",
		Long: `Starts the kovak daemon: polls the clipboard once a second, records new
entries, listens for the global show/hide hotkey, and serves the IPC socket
the other sub-commands use.

Config file search order:
  /etc/kovak/kovak.toml
  $HOME/.config/kovak/kovak.toml
  path supplied via --config

Precedence (lowest → highest): defaults → config file → KOVAK_* env vars → flags`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runDaemon(v) },
	}

	f := cmd.Flags()
	f.Duration("interval", poller.DefaultInterval, "clipboard poll interval")
	f.Bool("no-dialogs", false, "log hotkey-change outcomes instead of showing desktop dialogs")
	f.Bool("no-hotkey", false, "disable the global hotkey (toggle via 'kovak toggle' only)")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

// request is one IPC message awaiting handling on the daemon loop.
type request struct {
	msg   *message.Message
	reply chan *message.Message
}

// daemon owns all mutable state. Every mutation happens on the loop
// goroutine: poll ticks, hotkey toggles, and IPC requests are all
// serialized through the select in loop.
type daemon struct {
	settings  settings.Settings
	backend   clip.Backend
	store     *history.Store
	view      *view.View
	poller    *poller.Poller
	listener  *hotkey.Listener
	notifier  notify.Notifier
	startedAt time.Time
}

func runDaemon(v *viper.Viper) error {
	setupLogging(v)

	st := settings.Load()

	slog.Info("kovak starting",
		"version", Version,
		"hotkey", st.Hotkey,
		"interval", v.GetDuration("interval"),
	)

	backend := clip.New()
	defer backend.Close()

	store := history.New()
	vw := view.New()
	p := poller.New(backend, store, func(e entry.Entry) {
		vw.Append(e.Display)
	})

	var notifier notify.Notifier = notify.Dialogs{}
	if v.GetBool("no-dialogs") {
		notifier = notify.Log{}
	}

	listener := hotkey.New(hotkey.NewGohookBinding())
	defer listener.Close()
	if !v.GetBool("no-hotkey") {
		if err := listener.Register(st.Hotkey); err != nil {
			slog.Warn("hotkey registration failed", "hotkey", st.Hotkey, "err", err)
			if st.Hotkey != settings.DefaultHotkey {
				if err := listener.Register(settings.DefaultHotkey); err != nil {
					slog.Warn("default hotkey registration failed", "err", err)
				}
			}
		}
	}

	ln, err := ipc.Listen()
	if err != nil {
		return fmt.Errorf("listen %s: %w", ipc.SocketPath(), err)
	}
	defer ln.Close()
	slog.Info("IPC socket listening", "path", ipc.SocketPath())

	reqs := make(chan request)
	go serveIPC(ln, reqs)

	d := &daemon{
		settings:  st,
		backend:   backend,
		store:     store,
		view:      vw,
		poller:    p,
		listener:  listener,
		notifier:  notifier,
		startedAt: time.Now(),
	}
	return d.loop(v.GetDuration("interval"), reqs)
}

// loop is the daemon's single thread of control.
func (d *daemon) loop(interval time.Duration, reqs <-chan request) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			d.poller.Tick()

		case <-d.listener.Toggle():
			visible := d.view.Toggle()
			slog.Info("visibility toggled", "visible", visible, "via", "hotkey")

		case req := <-reqs:
			resp, err := d.handle(req.msg)
			if err != nil {
				// Only unrecoverable failures (settings write) land here.
				req.reply <- &message.Message{Type: message.TypeError, Error: err.Error()}
				return err
			}
			req.reply <- resp

		case s := <-sig:
			slog.Info("shutting down", "signal", s.String())
			return nil
		}
	}
}

func (d *daemon) handle(msg *message.Message) (*message.Message, error) {
	switch msg.Type {
	case message.TypeHistory:
		return &message.Message{
			Type:  message.TypeHistoryResponse,
			Rows:  d.view.Rows(),
			First: -1,
		}, nil

	case message.TypeSearch:
		first := d.view.Find(msg.Query)
		return &message.Message{
			Type:  message.TypeSearchResponse,
			Rows:  d.view.Rows(),
			First: first,
		}, nil

	case message.TypeFindReset:
		d.view.ResetFind()
		return &message.Message{Type: message.TypeOK}, nil

	case message.TypeRestore:
		if err := restore.Restore(d.backend, d.store.All(), msg.Text); err != nil {
			slog.Error("restore failed", "err", err)
			return &message.Message{Type: message.TypeError, Error: err.Error()}, nil
		}
		slog.Info("entry restored to clipboard")
		return &message.Message{Type: message.TypeOK}, nil

	case message.TypeClear:
		d.store.Clear()
		d.view.Clear()
		slog.Info("history cleared")
		return &message.Message{Type: message.TypeOK}, nil

	case message.TypeToggle:
		visible := d.view.Toggle()
		slog.Info("visibility toggled", "visible", visible, "via", "ipc")
		return &message.Message{
			Type: message.TypeOK,
			Info: fmt.Sprintf("visible: %v", visible),
		}, nil

	case message.TypeHotkey:
		return d.changeHotkey(msg.Hotkey)

	case message.TypeStatus:
		return &message.Message{
			Type: message.TypeStatusResponse,
			Status: &message.Status{
				Hotkey:    d.settings.Hotkey,
				Entries:   d.store.Len(),
				Visible:   d.view.Visible(),
				Backend:   d.backend.Name(),
				StartedAt: d.startedAt,
			},
		}, nil

	default:
		return &message.Message{
			Type:  message.TypeError,
			Error: fmt.Sprintf("unexpected message type %q", msg.Type),
		}, nil
	}
}

// changeHotkey replaces the global hotkey: unchanged is informational,
// invalid syntax keeps the old binding, success persists the settings. A settings write failure is returned as a hard error and stops
// the daemon; there is no recovery path for it.
func (d *daemon) changeHotkey(combo string) (*message.Message, error) {
	err := d.listener.Change(combo)
	switch {
	case errors.Is(err, hotkey.ErrUnchanged):
		d.notifier.Info("The new hotkey is the same as the current one")
		return &message.Message{
			Type: message.TypeInfo,
			Info: "hotkey unchanged",
		}, nil

	case errors.Is(err, hotkey.ErrInvalidSyntax):
		d.notifier.Error("Invalid hotkey entered")
		return &message.Message{Type: message.TypeError, Error: err.Error()}, nil

	case err != nil:
		return &message.Message{Type: message.TypeError, Error: err.Error()}, nil
	}

	d.settings.Hotkey = combo
	if err := settings.Save(d.settings); err != nil {
		return nil, err
	}
	slog.Info("hotkey changed", "hotkey", combo)
	return &message.Message{Type: message.TypeOK}, nil
}

func serveIPC(ln net.Listener, reqs chan<- request) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		go handleIPCConn(conn, reqs)
	}
}

func handleIPCConn(conn net.Conn, reqs chan<- request) {
	defer conn.Close()
	wc := wire.New(conn)

	msg, err := wc.ReadMsg()
	if err != nil {
		return
	}

	req := request{msg: msg, reply: make(chan *message.Message, 1)}
	reqs <- req
	_ = wc.WriteMsg(<-req.reply)
}
