package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode"

	"potion-brewer/internal/game"
	"potion-brewer/internal/recipe"
	internalssh "potion-brewer/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

const maxNameRunes = 16

// allowedTerms are the terminal types we hand to terminfo. Anything else
// falls back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// shop admits SSH sessions and gives each one a private game.
type shop struct {
	catalog *recipe.Catalog
	cfg     serverConfig
	logger  *slog.Logger

	mu     sync.Mutex
	active int
	nextID int
}

func newShop(catalog *recipe.Catalog, cfg serverConfig, logger *slog.Logger) *shop {
	return &shop{catalog: catalog, cfg: cfg, logger: logger}
}

// admit reserves a seat. It returns a session number, or false when the
// shop is full.
func (sh *shop) admit() (int, bool) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if sh.active >= sh.cfg.MaxSessions {
		return 0, false
	}
	sh.active++
	sh.nextID++
	return sh.nextID, true
}

func (sh *shop) release() {
	sh.mu.Lock()
	sh.active--
	sh.mu.Unlock()
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// until the player quits or disconnects.
func (sh *shop) handleSession(s gossh.Session) {
	tty, err := internalssh.NewTty(s)
	if err != nil {
		fmt.Fprintf(s, "The potion shop needs a terminal. Connect with: ssh -t -p %d <host>\n", sh.cfg.Port)
		return
	}

	id, ok := sh.admit()
	if !ok {
		fmt.Fprintln(s, "The shop is full. Come back when a cauldron frees up.")
		sh.logger.Info("session refused, shop full", "remote", s.RemoteAddr().String())
		return
	}
	defer sh.release()

	name := sanitizeName(s.User())
	if name == "" {
		name = fmt.Sprintf("Brewer %d", id)
	}
	logger := sh.logger.With("session", id, "player", name)

	term := tty.Term()
	if !allowedTerms[term] {
		term = defaultTerm
	}
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		logger.Warn("terminal setup failed", "term", term, "error", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		logger.Warn("screen init failed", "error", err)
		return
	}

	logger.Info("player connected", "remote", s.RemoteAddr().String(), "term", term)
	g := game.NewWithScreen(screen, sh.catalog, game.Options{
		Player:      name,
		Logger:      logger,
		RecordBrews: sh.cfg.RecordBrews,
	})
	if err := g.Run(); err != nil {
		logger.Error("game ended with error", "error", err)
	}
	logger.Info("player left")
}

// sanitizeName strips control characters from an SSH user name and caps it
// at maxNameRunes runes.
func sanitizeName(name string) string {
	var b strings.Builder
	n := 0
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if n == maxNameRunes {
			break
		}
		b.WriteRune(r)
		n++
	}
	return strings.TrimSpace(b.String())
}
