// Package ssh adapts gliderlabs SSH sessions to tcell so every connected
// player gets a private screen.
package ssh

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPTY is returned by NewTty when the client did not request a terminal.
var ErrNoPTY = errors.New("session has no pty")

// Tty implements tcell.Tty on top of one SSH session.
type Tty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	onSize func()
	once   sync.Once
}

// NewTty wraps s. It fails with ErrNoPTY when the client connected without
// a PTY (for example `ssh host cmd` without -t).
func NewTty(s gossh.Session) (*Tty, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	return &Tty{session: s, window: pty.Window, winCh: winCh}, nil
}

// Term returns the TERM the client asked for in its PTY request.
func (t *Tty) Term() string {
	pty, _, _ := t.session.Pty()
	return pty.Term
}

func (t *Tty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *Tty) Close() error                { return t.session.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and torn
// down by the SSH server.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the latest size reported by the client.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window-change requests. The first call starts
// a goroutine that follows the session's window channel until it closes or
// the session ends.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onSize = cb
	t.mu.Unlock()

	t.once.Do(func() { go t.watchResize() })
}

func (t *Tty) watchResize() {
	done := t.session.Context().Done()
	for {
		select {
		case <-done:
			return
		case win, ok := <-t.winCh:
			if !ok {
				return
			}
			t.mu.Lock()
			t.window = win
			cb := t.onSize
			t.mu.Unlock()
			if cb != nil {
				cb()
			}
		}
	}
}
