package render

// Rect is a screen-space rectangle in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// TargetKind identifies what a screen position points at.
type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetShelf
	TargetCauldron
	TargetBrew
)

// Target is the result of a hit test. Index is the shelf slot for TargetShelf.
type Target struct {
	Kind  TargetKind
	Index int
}

// layout records where the last frame put each interactive widget.
type layout struct {
	shelf    []Rect
	cauldron Rect
	brew     Rect
}

// HitTest maps a screen position to the widget drawn there in the last frame.
func (r *Renderer) HitTest(x, y int) Target {
	for i, rect := range r.layout.shelf {
		if rect.Contains(x, y) {
			return Target{Kind: TargetShelf, Index: i}
		}
	}
	if r.layout.cauldron.Contains(x, y) {
		return Target{Kind: TargetCauldron}
	}
	if r.layout.brew.Contains(x, y) {
		return Target{Kind: TargetBrew}
	}
	return Target{Kind: TargetNone}
}

// ShelfRect returns the rectangle of shelf slot i from the last frame.
func (r *Renderer) ShelfRect(i int) (Rect, bool) {
	if i < 0 || i >= len(r.layout.shelf) {
		return Rect{}, false
	}
	return r.layout.shelf[i], true
}

// CauldronRect returns the cauldron's rectangle from the last frame.
func (r *Renderer) CauldronRect() Rect { return r.layout.cauldron }

// BrewRect returns the brew button's rectangle from the last frame.
func (r *Renderer) BrewRect() Rect { return r.layout.brew }
