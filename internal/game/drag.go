package game

import (
	"potion-brewer/internal/render"

	"github.com/gdamore/tcell/v2"
)

// dragState follows an ingredient from the shelf to the cauldron.
type dragState struct {
	active bool
	slot   int
	x, y   int
}

// mouseState remembers button 1 between events so held-motion reports are
// not mistaken for fresh presses.
type mouseState struct {
	down bool
}

// handleMouse implements drag and drop: press on a shelf slot picks the
// ingredient up, motion with the button held moves it, and release over the
// cauldron drops it in. A press on the brew button brews. Only the press
// edge starts anything.
func (g *Game) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasDown := g.mouse.down
	g.mouse.down = pressed

	switch {
	case pressed && !wasDown:
		t := g.renderer.HitTest(x, y)
		switch t.Kind {
		case render.TargetShelf:
			g.selected = t.Index
			g.drag = dragState{active: true, slot: t.Index, x: x, y: y}
		case render.TargetBrew:
			g.brew()
		}
	case pressed && g.drag.active:
		g.drag.x, g.drag.y = x, y
	case !pressed && g.drag.active:
		slot := g.drag.slot
		g.drag = dragState{slot: -1}
		if g.renderer.HitTest(x, y).Kind == render.TargetCauldron {
			g.addSlot(slot)
		}
	}
}
