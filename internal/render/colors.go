package render

import "github.com/gdamore/tcell/v2"

// ElementColors tints element symbols in the composition readout.
// Unknown symbols are drawn in white.
var ElementColors = map[string]tcell.Color{
	"H":  tcell.ColorLightSkyBlue,
	"O":  tcell.ColorTomato,
	"Fe": tcell.ColorSandyBrown,
	"Cl": tcell.ColorLimeGreen,
}

func elementColor(sym string) tcell.Color {
	if c, ok := ElementColors[sym]; ok {
		return c
	}
	return tcell.ColorWhite
}

var (
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleLabel    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleProblem  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleShelf    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGold)
	styleDragging = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	styleCauldron = tcell.StyleDefault.Foreground(tcell.ColorMediumPurple)
	styleDropOver = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleEmpty    = tcell.StyleDefault.Foreground(tcell.ColorGray).Italic(true)
	styleBrew     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorMediumSeaGreen)
	styleSolved   = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleMentor   = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleHelp     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)
