package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-console/input"
	"github.com/lixenwraith/vi-console/transcript"
)

// glyph is one rune placed on a row
type glyph struct {
	ch    rune
	width int
	style tcell.Style
}

// row is one wrapped screen row
type row []glyph

func (r row) width() int {
	w := 0
	for _, g := range r {
		w += g.width
	}
	return w
}

// layout wraps transcript lines into rows no wider than width
// Every line yields at least one row; wrapping breaks between runes
func layout(lines []transcript.Line, width int, st Style) []row {
	if width <= 0 {
		return nil
	}

	rows := make([]row, 0, len(lines))
	for _, l := range lines {
		var cur row
		col := 0
		emit := func(s string, style tcell.Style) {
			for _, ch := range s {
				if ch == input.NBSP {
					ch = ' '
				}
				w := runewidth.RuneWidth(ch)
				if w == 0 {
					continue
				}
				if col+w > width {
					rows = append(rows, cur)
					cur, col = nil, 0
				}
				cur = append(cur, glyph{ch: ch, width: w, style: style})
				col += w
			}
		}

		if !st.HideTags {
			emit(l.Tag, st.tag(l.Author == transcript.AuthorUser))
		}
		emit(l.Content, st.text())
		rows = append(rows, cur)
	}
	return rows
}
