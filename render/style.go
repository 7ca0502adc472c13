package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Default palette
const (
	DefaultTagColor        = "#7BC02D"
	DefaultTextColor       = "#FAFAFA"
	DefaultBackgroundColor = "#000000"
	DefaultHeaderColor     = "#D9D9D9"
)

// Window control dots drawn on the header
var headerDots = [...]tcell.Color{
	tcell.NewHexColor(0xFF5F57),
	tcell.NewHexColor(0xFEBC2E),
	tcell.NewHexColor(0x28C840),
}

// Style controls how a pane paints its console
type Style struct {
	Tag        tcell.Color
	UserTag    tcell.Color
	Text       tcell.Color
	Background tcell.Color
	Header     tcell.Color

	Title      string
	HideTags   bool
	ShowHeader bool
	Scrollbar  bool // reserve the last column for a scrollbar
}

// DefaultStyle returns the stock palette with tags and scrollbar shown
func DefaultStyle() Style {
	tag := tcell.GetColor(DefaultTagColor)
	return Style{
		Tag:        tag,
		UserTag:    tag,
		Text:       tcell.GetColor(DefaultTextColor),
		Background: tcell.GetColor(DefaultBackgroundColor),
		Header:     tcell.GetColor(DefaultHeaderColor),
		Scrollbar:  true,
	}
}

// ParseColor parses a #RRGGBB value or a W3C color name
func ParseColor(s string) (tcell.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return tcell.ColorDefault, fmt.Errorf("empty color")
	}
	if name == "default" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}

func (st Style) base() tcell.Style {
	return tcell.StyleDefault.Background(st.Background)
}

func (st Style) text() tcell.Style {
	return st.base().Foreground(st.Text)
}

func (st Style) tag(user bool) tcell.Style {
	if user {
		return st.base().Foreground(st.UserTag)
	}
	return st.base().Foreground(st.Tag)
}

func (st Style) header() tcell.Style {
	return tcell.StyleDefault.Background(st.Header).Foreground(tcell.ColorBlack)
}
