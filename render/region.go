package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Region represents a rectangular area of a screen
// All coordinates are relative to the region's origin
type Region struct {
	Screen tcell.Screen
	X, Y   int // Absolute position on screen
	W, H   int // Region dimensions
}

// NewRegion creates a region on screen with bounds
func NewRegion(screen tcell.Screen, x, y, w, h int) Region {
	return Region{Screen: screen, X: x, Y: y, W: w, H: h}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{Screen: r.Screen, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Contains reports whether absolute screen position x, y falls inside the region
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if r.Screen == nil || x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.Screen.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Fill paints every cell of the region with style
func (r Region) Fill(style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', style)
		}
	}
}

// Text renders text at position, truncates at region edge
// Returns the column after the last rendered rune
func (r Region) Text(x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= r.H {
		return x
	}
	col := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > r.W {
			break
		}
		if col >= 0 {
			r.Cell(col, y, ch, style)
		}
		col += w
	}
	return col
}

// TextRight renders text right-aligned on row
func (r Region) TextRight(y int, s string, style tcell.Style) {
	r.Text(r.W-runewidth.StringWidth(s), y, s, style)
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, style tcell.Style) {
	r.Text((r.W-runewidth.StringWidth(s))/2, y, s, style)
}
