package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const helpLine = "←/→ pick  Enter drop  1-9 drop nth  b brew  ? hint  r restart  n next  q quit"

// DrawHUD renders the key help and the mentor's last three lines at the
// bottom of the screen, then shows the frame.
func (r *Renderer) DrawHUD(messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)
	r.drawText(0, hudY+1, helpLine, styleHelp)

	start := len(messages) - 3
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, styleMentor)
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from (x, y), advancing by each rune's cell width and
// stopping at the right edge. It returns the column after the last rune.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	sw, _ := r.screen.Size()
	col := x
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if col+cw > sw {
			break
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += cw
	}
	return col
}
