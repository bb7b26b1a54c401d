package ssh

import (
	"errors"
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

// fakeCtx only implements Done; the Tty never touches the rest.
type fakeCtx struct {
	gossh.Context
	done chan struct{}
}

func (c fakeCtx) Done() <-chan struct{} { return c.done }

type fakeSession struct {
	gossh.Session
	pty    gossh.Pty
	hasPTY bool
	winCh  chan gossh.Window
	ctx    fakeCtx
}

func (s *fakeSession) Pty() (gossh.Pty, <-chan gossh.Window, bool) {
	return s.pty, s.winCh, s.hasPTY
}

func (s *fakeSession) Context() gossh.Context { return s.ctx }

func newFakeSession(hasPTY bool) *fakeSession {
	return &fakeSession{
		pty:    gossh.Pty{Term: "xterm-256color", Window: gossh.Window{Width: 80, Height: 24}},
		hasPTY: hasPTY,
		winCh:  make(chan gossh.Window, 1),
		ctx:    fakeCtx{done: make(chan struct{})},
	}
}

func TestNewTtyRequiresPTY(t *testing.T) {
	if _, err := NewTty(newFakeSession(false)); !errors.Is(err, ErrNoPTY) {
		t.Fatalf("err = %v, want ErrNoPTY", err)
	}
}

func TestTtyInitialSizeAndTerm(t *testing.T) {
	tty, err := NewTty(newFakeSession(true))
	if err != nil {
		t.Fatal(err)
	}
	ws, err := tty.WindowSize()
	if err != nil {
		t.Fatal(err)
	}
	if ws.Width != 80 || ws.Height != 24 {
		t.Errorf("size = %dx%d, want 80x24", ws.Width, ws.Height)
	}
	if tty.Term() != "xterm-256color" {
		t.Errorf("Term = %q", tty.Term())
	}
}

func TestTtyResize(t *testing.T) {
	s := newFakeSession(true)
	defer close(s.ctx.done)
	tty, err := NewTty(s)
	if err != nil {
		t.Fatal(err)
	}
	called := make(chan struct{}, 1)
	tty.NotifyResize(func() { called <- struct{}{} })

	s.winCh <- gossh.Window{Width: 120, Height: 40}
	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("resize callback not called")
	}
	ws, _ := tty.WindowSize()
	if ws.Width != 120 || ws.Height != 40 {
		t.Errorf("size after resize = %dx%d", ws.Width, ws.Height)
	}
}
