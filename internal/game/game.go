// Package game is the terminal shell around the recipe engine: it turns key
// presses and mouse drags on a tcell screen into engine calls and draws the
// result.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"potion-brewer/internal/recipe"
	"potion-brewer/internal/render"

	"github.com/gdamore/tcell/v2"
)

// maxMessages caps the mentor log.
const maxMessages = 50

const (
	msgCampaignDone = "Every customer has been served. Press n to open the request book again."
	msgNotSolved    = "The customer is still waiting. Brew the right potion first."
	msgNoHint       = "I have nothing more to tell you. Trust your nose."
)

// Options configures a Game.
type Options struct {
	// Player is shown in the title bar and written to the brew log.
	Player string
	// StartLevel is the 0-indexed level the game opens on.
	StartLevel int
	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
	// RecordBrews appends every evaluation to brews.jsonl in DataDir.
	RecordBrews bool
}

// Game drives one player's session on one screen.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	engine   *recipe.Engine
	opts     Options
	logger   *slog.Logger

	problem  string
	selected int
	drag     dragState
	mouse    mouseState
	messages []string
	solved   bool
	quit     bool
}

// New creates a Game on the controlling terminal.
func New(catalog *recipe.Catalog, opts Options) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, catalog, opts), nil
}

// NewWithScreen creates a Game on an already initialised screen, such as one
// backed by an SSH session.
func NewWithScreen(screen tcell.Screen, catalog *recipe.Catalog, opts Options) *Game {
	screen.EnableMouse()
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		engine:   recipe.NewEngine(catalog),
		opts:     opts,
		logger:   logger,
		drag:     dragState{slot: -1},
	}
}

// Engine exposes the session's engine.
func (g *Game) Engine() *recipe.Engine { return g.engine }

// Messages returns the mentor log, oldest first.
func (g *Game) Messages() []string { return append([]string(nil), g.messages...) }

// Run opens the configured level and processes events until the player quits
// or the screen goes away. The screen is finalised on return.
func (g *Game) Run() error {
	defer g.screen.Fini()

	if err := g.startLevel(g.opts.StartLevel); err != nil {
		return err
	}
	for !g.quit {
		g.draw()
		ev := g.screen.PollEvent()
		if ev == nil {
			return nil
		}
		g.handleEvent(ev)
	}
	return nil
}

// handleEvent dispatches one tcell event.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		g.handleKey(ev)
	case *tcell.EventMouse:
		g.handleMouse(ev)
	}
}

func (g *Game) handleKey(ev *tcell.EventKey) {
	shelf := len(g.engine.Catalog().Ingredients())
	switch keyToAction(ev) {
	case ActionPrev:
		g.selected = (g.selected - 1 + shelf) % shelf
	case ActionNext:
		g.selected = (g.selected + 1) % shelf
	case ActionDrop:
		g.addSlot(g.selected)
	case ActionDropSlot:
		if slot, ok := slotFromKey(ev); ok && slot < shelf {
			g.selected = slot
			g.addSlot(slot)
		}
	case ActionBrew:
		g.brew()
	case ActionHint:
		g.hint()
	case ActionRestart:
		idx, _, _ := g.engine.Level()
		if err := g.startLevel(idx); err != nil {
			g.reportError("restart level", err)
		}
	case ActionNextLevel:
		g.nextLevel()
	case ActionQuit:
		g.quit = true
	}
}

func (g *Game) startLevel(idx int) error {
	start, err := g.engine.StartLevel(idx)
	if err != nil {
		return fmt.Errorf("start level: %w", err)
	}
	g.problem = start.ProblemText
	g.solved = false
	g.drag = dragState{slot: -1}
	g.addMessage(start.MentorText)
	g.logger.Debug("level started", "player", g.opts.Player, "level", idx+1)
	return nil
}

// addSlot drops the ingredient in shelf slot i into the cauldron.
func (g *Game) addSlot(i int) {
	ings := g.engine.Catalog().Ingredients()
	if i < 0 || i >= len(ings) {
		return
	}
	ack, err := g.engine.AddIngredient(ings[i].ID)
	if err != nil {
		g.reportError("add ingredient", err)
		return
	}
	g.addMessage(ack.AckText)
}

// brew evaluates the cauldron, shows the mentor's verdict and logs it.
func (g *Game) brew() {
	res, err := g.engine.Evaluate()
	if err != nil {
		g.reportError("evaluate", err)
		return
	}
	g.addMessage(res.Message)
	idx, _, _ := g.engine.Level()
	if res.Solved() {
		g.solved = true
		if idx == g.engine.Catalog().LevelCount()-1 {
			g.addMessage(msgCampaignDone)
		}
	}
	g.logger.Debug("brew evaluated", "player", g.opts.Player, "level", idx+1, "outcome", res.Kind.String(), "element", string(res.Element))

	if g.opts.RecordBrews {
		comp := make(map[string]int)
		for el, n := range g.engine.Composition() {
			comp[string(el)] = n
		}
		saveBrewRecord(BrewRecord{
			Timestamp:   time.Now(),
			Player:      g.opts.Player,
			Level:       idx + 1,
			Ingredients: g.engine.Contents(),
			Composition: comp,
			Outcome:     res.Kind.String(),
			Element:     string(res.Element),
		}, g.logger)
	}
}

func (g *Game) hint() {
	h, err := g.engine.Hint()
	if err != nil {
		g.reportError("hint", err)
		return
	}
	if h == "" {
		h = msgNoHint
	}
	g.addMessage(h)
}

// nextLevel advances once the current level is solved, wrapping to the first
// level after the last one.
func (g *Game) nextLevel() {
	if !g.solved {
		g.addMessage(msgNotSolved)
		return
	}
	idx, _, _ := g.engine.Level()
	next := (idx + 1) % g.engine.Catalog().LevelCount()
	if err := g.startLevel(next); err != nil {
		g.reportError("next level", err)
	}
}

func (g *Game) reportError(op string, err error) {
	g.logger.Warn("engine call failed", "op", op, "player", g.opts.Player, "error", err)
	switch {
	case errors.Is(err, recipe.ErrUnknownIngredient):
		g.addMessage("That is not something we keep on the shelf.")
	case errors.Is(err, recipe.ErrNoActiveLevel):
		g.addMessage("No customer is waiting right now.")
	default:
		g.addMessage(err.Error())
	}
}

// addMessage appends a mentor line, capping the log at maxMessages entries.
func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// view snapshots engine and UI state for the renderer.
func (g *Game) view() render.View {
	cat := g.engine.Catalog()
	idx, _, _ := g.engine.Level()

	v := render.View{
		Player:     g.opts.Player,
		LevelNum:   idx + 1,
		LevelCount: cat.LevelCount(),
		Problem:    g.problem,
		Selected:   g.selected,
		Messages:   g.messages,
		Solved:     g.solved,
		Dragging:   -1,
	}
	for _, ing := range cat.Ingredients() {
		v.Shelf = append(v.Shelf, render.ShelfItem{Name: ing.Name, Formula: ing.Formula.String()})
	}
	for _, id := range g.engine.Contents() {
		ing, _ := cat.Ingredient(id)
		v.Cauldron = append(v.Cauldron, ing.Name)
	}
	comp := g.engine.Composition()
	for _, el := range cat.Elements() {
		if n, ok := comp[el.Symbol]; ok {
			v.Composition = append(v.Composition, render.ElementCount{Symbol: string(el.Symbol), Count: n})
		}
	}
	if g.drag.active {
		v.Dragging = g.drag.slot
		v.DragX, v.DragY = g.drag.x, g.drag.y
	}
	return v
}

func (g *Game) draw() { g.renderer.Draw(g.view()) }
