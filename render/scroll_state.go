package render

// ScrollState tracks scroll position for a scrollable pane
type ScrollState struct {
	Offset  int // First visible row
	Total   int // Total row count
	Visible int // Visible row count (viewport height)
}

// NewScrollState creates initialized scroll state
func NewScrollState(total, visible int) *ScrollState {
	return &ScrollState{Total: total, Visible: visible}
}

// ScrollBy adjusts offset by delta, clamping to valid range
func (s *ScrollState) ScrollBy(delta int) {
	s.Offset += delta
	s.Clamp()
}

// ScrollTo sets offset to specific position
func (s *ScrollState) ScrollTo(pos int) {
	s.Offset = pos
	s.Clamp()
}

// ScrollToBottom pins the last row to the bottom of the viewport
func (s *ScrollState) ScrollToBottom() {
	s.ScrollTo(s.Total)
}

// Clamp ensures offset is within valid range
func (s *ScrollState) Clamp() {
	s.Offset = ClampScroll(s.Offset, s.Visible, s.Total)
}

// PageUp scrolls up by half visible height
func (s *ScrollState) PageUp() {
	s.ScrollBy(-PageDelta(s.Visible))
}

// PageDown scrolls down by half visible height
func (s *ScrollState) PageDown() {
	s.ScrollBy(PageDelta(s.Visible))
}

// SetTotal updates total count and reclamps
func (s *ScrollState) SetTotal(total int) {
	s.Total = total
	s.Clamp()
}

// SetVisible updates visible count and reclamps
func (s *ScrollState) SetVisible(visible int) {
	s.Visible = visible
	s.Clamp()
}

// Overflowing returns true if content exceeds the viewport
func (s *ScrollState) Overflowing() bool {
	return s.Total > s.Visible
}

// AtTop returns true if scrolled to top
func (s *ScrollState) AtTop() bool {
	return s.Offset == 0
}

// AtBottom returns true if scrolled to bottom
func (s *ScrollState) AtBottom() bool {
	if s.Total <= s.Visible {
		return true
	}
	return s.Offset >= s.Total-s.Visible
}

// PageDelta returns recommended page scroll amount
func PageDelta(visible int) int {
	delta := visible / 2
	if delta < 1 {
		delta = 1
	}
	return delta
}

// ClampScroll ensures scroll offset is within valid range
func ClampScroll(scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	maxScroll := total - visible
	if scroll < 0 {
		return 0
	}
	if scroll > maxScroll {
		return maxScroll
	}
	return scroll
}

// ThumbSpan returns the scrollbar thumb position and height on a track of trackH rows
func (s *ScrollState) ThumbSpan(trackH int) (y, h int) {
	if s.Total <= s.Visible || trackH < 1 {
		return 0, trackH
	}

	h = (s.Visible * trackH) / s.Total
	if h < 1 {
		h = 1
	}
	if h > trackH {
		h = trackH
	}

	maxScroll := s.Total - s.Visible
	y = (s.Offset * (trackH - h)) / maxScroll
	if y < 0 {
		y = 0
	}
	if y+h > trackH {
		y = trackH - h
	}
	return y, h
}
