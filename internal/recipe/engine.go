package recipe

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLevelIndex is returned by StartLevel for an out-of-range index.
	ErrInvalidLevelIndex = errors.New("invalid level index")
	// ErrUnknownIngredient is returned by AddIngredient for an id not in the catalog.
	ErrUnknownIngredient = errors.New("unknown ingredient")
	// ErrNoActiveLevel is returned when an operation needs a started level.
	ErrNoActiveLevel = errors.New("no active level")
)

// LevelStart is what StartLevel hands back to the UI.
type LevelStart struct {
	ProblemText string
	MentorText  string
}

// Ack acknowledges an ingredient drop.
type Ack struct {
	AckText string
}

// Engine holds one player's attempt: the active level and the cauldron.
// It is not safe for concurrent use; give every player their own Engine.
type Engine struct {
	catalog *Catalog
	level   int // -1 until StartLevel succeeds
	// cauldron lists ingredient ids in drop order. The composition is always
	// recomputed from it.
	cauldron []string
}

// NewEngine returns an Engine with no active level.
func NewEngine(c *Catalog) *Engine {
	return &Engine{catalog: c, level: -1}
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// StartLevel empties the cauldron and makes index the active level.
// On error nothing changes.
func (e *Engine) StartLevel(index int) (LevelStart, error) {
	lv, ok := e.catalog.Level(index)
	if !ok {
		return LevelStart{}, fmt.Errorf("%w: %d (have %d levels)", ErrInvalidLevelIndex, index, e.catalog.LevelCount())
	}
	e.level = index
	e.cauldron = nil
	return LevelStart{ProblemText: lv.Problem, MentorText: msgNewLevel}, nil
}

// RestartLevel starts the active level over.
func (e *Engine) RestartLevel() (LevelStart, error) {
	if e.level < 0 {
		return LevelStart{}, ErrNoActiveLevel
	}
	return e.StartLevel(e.level)
}

// Level returns the active level and its index.
func (e *Engine) Level() (int, Level, bool) {
	if e.level < 0 {
		return -1, Level{}, false
	}
	lv, _ := e.catalog.Level(e.level)
	return e.level, lv, true
}

// Hint returns the active level's hint text.
func (e *Engine) Hint() (string, error) {
	_, lv, ok := e.Level()
	if !ok {
		return "", ErrNoActiveLevel
	}
	return lv.Hint, nil
}

// AddIngredient drops id into the cauldron. Repeats accumulate; nothing is
// checked against the target until Evaluate.
func (e *Engine) AddIngredient(id string) (Ack, error) {
	if e.level < 0 {
		return Ack{}, ErrNoActiveLevel
	}
	ing, ok := e.catalog.Ingredient(id)
	if !ok {
		return Ack{}, fmt.Errorf("%w: %q", ErrUnknownIngredient, id)
	}
	e.cauldron = append(e.cauldron, ing.ID)
	return Ack{AckText: fmt.Sprintf(msgAdded, ing.Name)}, nil
}

// Contents returns a copy of the cauldron's ingredient ids in drop order.
func (e *Engine) Contents() []string {
	return append([]string(nil), e.cauldron...)
}

// Composition sums the formulas of everything in the cauldron.
func (e *Engine) Composition() Composition {
	c := make(Composition)
	for _, id := range e.cauldron {
		ing, ok := e.catalog.Ingredient(id)
		if !ok {
			continue
		}
		c.Add(ing.Formula)
	}
	return c
}

// Evaluate judges the cauldron against the active target. It never changes
// engine state; advancing to the next level is up to the caller. The only
// error is ErrNoActiveLevel, returned before the first StartLevel.
func (e *Engine) Evaluate() (Result, error) {
	_, lv, ok := e.Level()
	if !ok {
		return Result{}, ErrNoActiveLevel
	}
	have := e.Composition()
	if have.Equal(lv.Target.Composition()) {
		return Result{Kind: KindSuccess, Message: msgSuccess}, nil
	}
	if len(e.cauldron) == 0 {
		return Result{Kind: KindEmpty, Message: msgEmpty}, nil
	}
	for _, t := range lv.Target {
		n := have[t.Element]
		name := e.catalog.ElementName(t.Element)
		if n < t.Count {
			return Result{Kind: KindUnder, Element: t.Element, Message: fmt.Sprintf(msgUnder, name)}, nil
		}
		if n > t.Count {
			return Result{Kind: KindOver, Element: t.Element, Message: fmt.Sprintf(msgOver, name)}, nil
		}
	}
	// Every target element is exact, so the mismatch is an extra element.
	return Result{Kind: KindFallback, Message: msgFallback}, nil
}
