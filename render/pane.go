package render

import (
	"github.com/lixenwraith/vi-console/console"
)

// Source provides the console state a pane paints
type Source interface {
	Snapshot() console.Snapshot
}

// Pane paints one console session into a screen region
// Implements console.Scroller; all calls must come from the session's goroutine
type Pane struct {
	region Region
	style  Style
	source Source
	scroll *ScrollState
}

// NewPane creates a pane over region
// The source is attached after the session is created, since the session takes the pane as its scroller
func NewPane(region Region, style Style) *Pane {
	return &Pane{
		region: region,
		style:  style,
		scroll: NewScrollState(0, 0),
	}
}

// Attach binds the pane to src and pins the view to the bottom
func (p *Pane) Attach(src Source) {
	p.source = src
	p.RecomputeScroll()
}

// Region returns the pane's screen area
func (p *Pane) Region() Region {
	return p.region
}

// SetRegion moves or resizes the pane
func (p *Pane) SetRegion(r Region) {
	p.region = r
	p.RecomputeScroll()
}

// Contains reports whether the absolute screen position is inside the pane
func (p *Pane) Contains(x, y int) bool {
	return p.region.Contains(x, y)
}

// Scroll returns a copy of the scroll state
func (p *Pane) Scroll() ScrollState {
	return *p.scroll
}

// ScrollBy moves the view by delta rows
func (p *Pane) ScrollBy(delta int) {
	p.scroll.ScrollBy(delta)
}

// body is the region below the header and left of the scrollbar
func (p *Pane) body() Region {
	r := p.region
	if p.style.ShowHeader {
		r = r.Sub(0, 1, r.W, r.H-1)
	}
	if p.style.Scrollbar && r.W > 1 {
		r = r.Sub(0, 0, r.W-1, r.H)
	}
	return r
}

// RecomputeScroll measures content against the viewport and scrolls to the bottom
func (p *Pane) RecomputeScroll() console.Overflow {
	if p.source == nil {
		return console.OverflowHidden
	}

	body := p.body()
	rows := layout(p.source.Snapshot().Lines, body.W, p.style)
	p.scroll.SetVisible(body.H)
	p.scroll.SetTotal(len(rows))
	p.scroll.ScrollToBottom()

	if p.scroll.Overflowing() {
		return console.OverflowScroll
	}
	return console.OverflowHidden
}

// Draw paints the pane, placing the terminal cursor if the session is focused
func (p *Pane) Draw() {
	p.region.Fill(p.style.base())
	if p.source == nil {
		return
	}

	snap := p.source.Snapshot()
	if p.style.ShowHeader {
		p.drawHeader(snap)
	}

	body := p.body()
	rows := layout(snap.Lines, body.W, p.style)

	offset := 0
	if snap.Overflow == console.OverflowScroll {
		p.scroll.SetTotal(len(rows))
		offset = p.scroll.Offset
	}

	for y := 0; y < body.H && offset+y < len(rows); y++ {
		x := 0
		for _, g := range rows[offset+y] {
			body.Cell(x, y, g.ch, g.style)
			x += g.width
		}
	}

	if p.style.Scrollbar && snap.Overflow == console.OverflowScroll && p.scroll.Overflowing() {
		p.drawScrollbar(body)
	}

	if snap.Focused && snap.Mode != console.ModeComplete && len(rows) > 0 {
		cy := len(rows) - 1 - offset
		cx := rows[len(rows)-1].width()
		if cx >= body.W {
			cx, cy = 0, cy+1
		}
		if cy >= 0 && cy < body.H && p.region.Screen != nil {
			p.region.Screen.ShowCursor(body.X+cx, body.Y+cy)
		}
	}
}

func (p *Pane) drawHeader(snap console.Snapshot) {
	bar := p.region.Sub(0, 0, p.region.W, 1)
	style := p.style.header()
	bar.Fill(style)

	x := 1
	for _, c := range headerDots {
		bar.Cell(x, 0, '●', style.Foreground(c))
		x += 2
	}
	bar.TextCenter(0, p.style.Title, style.Bold(snap.Focused))
}

func (p *Pane) drawScrollbar(body Region) {
	track := p.region.Sub(body.X-p.region.X+body.W, body.Y-p.region.Y, 1, body.H)
	thumbY, thumbH := p.scroll.ThumbSpan(track.H)
	style := p.style.base().Foreground(p.style.Tag)

	for y := 0; y < track.H; y++ {
		ch := '░'
		if y >= thumbY && y < thumbY+thumbH {
			ch = '█'
		}
		track.Cell(0, y, ch, style)
	}
}
