package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ShelfItem is one ingredient as shown on the shelf.
type ShelfItem struct {
	Name    string
	Formula string
}

// View is everything the renderer needs for one frame. The game shell builds
// it from engine state; the renderer never talks to the engine.
type View struct {
	Player     string
	LevelNum   int // 1-indexed
	LevelCount int
	Problem    string
	Shelf      []ShelfItem
	Selected   int
	Cauldron   []string // ingredient names in drop order
	// Composition is the cauldron's element readout in display order.
	Composition []ElementCount
	Messages    []string
	Solved      bool

	// Dragging is the shelf slot being dragged, or -1.
	Dragging     int
	DragX, DragY int
}

// ElementCount is one entry of the composition readout.
type ElementCount struct {
	Symbol string
	Count  int
}

// Renderer draws the brewing board onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	layout layout
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// hudRows is the number of rows reserved at the bottom for the HUD.
const hudRows = 5

// Draw renders a full frame and shows it.
func (r *Renderer) Draw(v View) {
	r.screen.Clear()
	w, h := r.screen.Size()
	r.layout = layout{}

	title := fmt.Sprintf("Potion Shop  Level %d/%d", v.LevelNum, v.LevelCount)
	if v.Player != "" {
		title += "  " + v.Player
	}
	r.putGlyph(0, 0, "🧪", styleTitle)
	r.drawText(3, 0, title, styleTitle)

	y := 2
	r.drawText(0, y, "Customer:", styleLabel)
	y++
	for i, line := range wrap(v.Problem, w-2) {
		if i == 3 {
			break
		}
		r.drawText(2, y, line, styleProblem)
		y++
	}
	y++

	y = r.drawShelf(v, y, w)
	y++
	y = r.drawCauldron(v, y, w, h)
	r.drawBrew(v, y)

	if v.Dragging >= 0 && v.Dragging < len(v.Shelf) {
		r.drawText(v.DragX, v.DragY, v.Shelf[v.Dragging].Name, styleSelected)
	}

	r.DrawHUD(v.Messages)
}

// drawShelf lays shelf items out left to right, wrapping onto new rows.
func (r *Renderer) drawShelf(v View, y, w int) int {
	r.drawText(0, y, "Shelf:", styleLabel)
	y++
	x := 2
	for i, item := range v.Shelf {
		label := fmt.Sprintf(" %d %s %s ", i+1, item.Name, item.Formula)
		lw := runewidth.StringWidth(label)
		if x+lw > w && x > 2 {
			x = 2
			y++
		}
		st := styleShelf
		switch {
		case i == v.Dragging:
			st = styleDragging
		case i == v.Selected:
			st = styleSelected
		}
		r.drawText(x, y, label, st)
		r.layout.shelf = append(r.layout.shelf, Rect{X: x, Y: y, W: lw, H: 1})
		x += lw + 1
	}
	return y + 1
}

// drawCauldron draws the cauldron box and the composition line under it.
func (r *Renderer) drawCauldron(v View, y, w, h int) int {
	boxW := w - 4
	if boxW > 60 {
		boxW = 60
	}
	if boxW < 20 {
		boxW = 20
	}
	boxH := 5
	// Keep room for the composition line, brew button and HUD.
	if maxH := h - hudRows - y - 3; boxH > maxH {
		boxH = maxH
	}
	if boxH < 3 {
		boxH = 3
	}
	box := Rect{X: 2, Y: y, W: boxW, H: boxH}
	r.layout.cauldron = box

	border := styleCauldron
	if v.Dragging >= 0 && box.Contains(v.DragX, v.DragY) {
		border = styleDropOver
	}
	r.drawBox(box, border)
	r.drawText(box.X+2, box.Y, " Cauldron ", border)

	inner := box.W - 4
	if len(v.Cauldron) == 0 {
		r.drawText(box.X+2, box.Y+1, "Drag ingredients here", styleEmpty)
	} else {
		lines := wrap(strings.Join(v.Cauldron, ", "), inner)
		for i, line := range lines {
			if i >= box.H-2 {
				break
			}
			r.drawText(box.X+2, box.Y+1+i, line, styleProblem)
		}
	}

	y = box.Y + box.H
	x := r.drawText(2, y, "Contents: ", styleLabel)
	if len(v.Composition) == 0 {
		r.drawText(x, y, "nothing", styleEmpty)
	}
	for _, ec := range v.Composition {
		x = r.drawText(x, y, fmt.Sprintf("%s%d ", ec.Symbol, ec.Count), tcell.StyleDefault.Foreground(elementColor(ec.Symbol)))
	}
	return y + 1
}

func (r *Renderer) drawBrew(v View, y int) {
	label := "[ Brew ]"
	st := styleBrew
	if v.Solved {
		label = "[ Solved! press n ]"
		st = styleSolved
	}
	r.drawText(2, y, label, st)
	r.layout.brew = Rect{X: 2, Y: y, W: runewidth.StringWidth(label), H: 1}
}

func (r *Renderer) drawBox(b Rect, st tcell.Style) {
	right, bottom := b.X+b.W-1, b.Y+b.H-1
	for x := b.X + 1; x < right; x++ {
		r.screen.SetContent(x, b.Y, '─', nil, st)
		r.screen.SetContent(x, bottom, '─', nil, st)
	}
	for y := b.Y + 1; y < bottom; y++ {
		r.screen.SetContent(b.X, y, '│', nil, st)
		r.screen.SetContent(right, y, '│', nil, st)
	}
	r.screen.SetContent(b.X, b.Y, '╭', nil, st)
	r.screen.SetContent(right, b.Y, '╮', nil, st)
	r.screen.SetContent(b.X, bottom, '╰', nil, st)
	r.screen.SetContent(right, bottom, '╯', nil, st)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// wrap breaks text into lines no wider than width columns, splitting on spaces.
// Words wider than width are cut.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curW := 0
	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		if ww > width {
			word = runewidth.Truncate(word, width, "")
			ww = runewidth.StringWidth(word)
		}
		if curW > 0 && curW+1+ww > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curW = 0
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		cur.WriteString(word)
		curW += ww
	}
	if curW > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
