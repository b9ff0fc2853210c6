package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Empty cells draw as a blank on the default background
var emptyCell = Cell{Rune: ' ', Style: tcell.StyleDefault.Background(RgbBackground)}
