package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-console/config"
	"github.com/lixenwraith/vi-console/console"
	"github.com/lixenwraith/vi-console/engine"
	"github.com/lixenwraith/vi-console/focus"
	"github.com/lixenwraith/vi-console/input"
	"github.com/lixenwraith/vi-console/render"
	"github.com/lixenwraith/vi-console/script"
	"github.com/lixenwraith/vi-console/status"
	"github.com/lixenwraith/vi-console/terminal"
)

// frameInterval paces redraws between input events
const frameInterval = 33 * time.Millisecond

const echoGreeting = "Responses from the main console appear here."

// consolePane binds a session to the pane that paints it
type consolePane struct {
	name    string
	pane    *render.Pane
	session *console.Session
}

type appOptions struct {
	Config *config.Config
	Script script.Script
	Sound  console.Sound
	Logger zerolog.Logger
	Quit   func()
}

// app owns the screen and every console on it
// All methods run on the loop goroutine
type app struct {
	cfg     *config.Config
	screen  tcell.Screen
	sched   engine.Scheduler
	arbiter *focus.Arbiter
	stats   *status.Registry
	log     zerolog.Logger
	style   render.Style
	quit    func()

	panes     []*consolePane
	echo      *consolePane
	mouse     terminal.MouseTracker
	responses []console.Response
	frame     engine.Task
}

func newApp(screen tcell.Screen, sched engine.Scheduler, opts appOptions) (*app, error) {
	cfg := opts.Config
	style, err := cfg.Style()
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:     cfg,
		screen:  screen,
		sched:   sched,
		arbiter: focus.New(),
		stats:   status.NewRegistry(),
		log:     opts.Logger.With().Str("component", "host").Logger(),
		style:   style,
		quit:    opts.Quit,
	}

	regions := a.layout(screen.Size())

	primary := a.addPane("main", regions[0], style, opts.Script, func(o *console.Options) {
		o.Sound = opts.Sound
		o.Logger = opts.Logger
		o.OnResponse = a.onResponse
		if cfg.Passive {
			o.OnComplete = a.onComplete("main")
		}
	})

	if cfg.Split {
		echoStyle := style
		echoStyle.Title = "echo"
		a.echo = a.addPane("echo", regions[1], echoStyle, script.Text(echoGreeting), func(o *console.Options) {
			o.Focus = false
			o.Passive = false
			o.Loop = false
			o.Logger = opts.Logger
			o.OnResponse = func(r console.Response) {
				a.log.Info().Str("pane", "echo").Str("value", r.Value).Msg("echo input")
			}
		})
	}

	a.log.Info().
		Int("panes", len(a.panes)).
		Bool("focused", primary.session.Focused()).
		Msg("console host started")

	a.frame = sched.Every(frameInterval, a.draw)
	return a, nil
}

// addPane creates a session painted by a new pane
// Config options are applied first, then tune overrides them
func (a *app) addPane(name string, region render.Region, style render.Style, sc script.Script, tune func(*console.Options)) *consolePane {
	cp := &consolePane{
		name: name,
		pane: render.NewPane(region, style),
	}

	opts := a.cfg.SessionOptions()
	opts.Arbiter = a.arbiter
	opts.Status = a.stats
	opts.Scroller = cp.pane
	tune(&opts)

	cp.session = console.New(sc, a.sched, opts)
	cp.pane.Attach(cp.session)
	a.panes = append(a.panes, cp)
	return cp
}

func (a *app) close() {
	if a.frame != nil {
		a.frame.Stop()
	}
	for _, cp := range a.panes {
		cp.session.Close()
	}
}

func (a *app) onResponse(r console.Response) {
	a.responses = append(a.responses, r)
	a.log.Info().Str("id", r.ID).Str("value", r.Value).Msg("response")

	if a.echo != nil {
		a.echo.session.SetScript(script.Text(echoLine(r)))
	}
}

func (a *app) onComplete(name string) func() {
	return func() {
		a.log.Info().Str("pane", name).Msg("console complete")
	}
}

func echoLine(r console.Response) string {
	value := plainText(r.Value)
	if r.ID == "" {
		return fmt.Sprintf("received %q", value)
	}
	return fmt.Sprintf("%s = %q", r.ID, value)
}

// plainText turns the non-breaking spaces of typed input back into spaces
func plainText(s string) string {
	return strings.ReplaceAll(s, string(input.NBSP), " ")
}

// handleEvent dispatches one terminal event and redraws
func (a *app) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if terminal.IsQuit(ev) {
			a.log.Info().Msg("quit requested")
			if a.quit != nil {
				a.quit()
			}
			return
		}
		// Every console sees every key; sessions filter by focus themselves
		for _, ks := range terminal.TranslateKey(ev) {
			for _, cp := range a.panes {
				if ks.Action == terminal.ActionUp {
					cp.session.HandleKeyUp(ks.Key)
				} else {
					cp.session.HandleKeyDown(ks.Key)
				}
			}
		}

	case *tcell.EventMouse:
		a.handleMouse(a.mouse.Translate(ev))

	case *tcell.EventResize:
		a.screen.Sync()
		regions := a.layout(a.screen.Size())
		for i, cp := range a.panes {
			cp.pane.SetRegion(regions[i])
		}
	}

	a.draw()
}

func (a *app) handleMouse(me terminal.MouseEvent) {
	switch me.Button {
	case terminal.MouseBtnWheelUp, terminal.MouseBtnWheelDown:
		delta := 1
		if me.Button == terminal.MouseBtnWheelUp {
			delta = -1
		}
		if cp := a.paneAt(me.X, me.Y); cp != nil {
			cp.pane.ScrollBy(delta)
		}
		return
	}

	if me.Action != terminal.MouseActionPress {
		return
	}

	a.arbiter.PointerDownOutside()
	if cp := a.paneAt(me.X, me.Y); cp != nil {
		cp.session.Focus()
	}
}

func (a *app) paneAt(x, y int) *consolePane {
	for _, cp := range a.panes {
		if cp.pane.Contains(x, y) {
			return cp
		}
	}
	return nil
}

// layout splits the screen above the status line into one or two pane regions
func (a *app) layout(w, h int) []render.Region {
	body := max(h-1, 0)
	if !a.cfg.Split {
		return []render.Region{render.NewRegion(a.screen, 0, 0, w, body)}
	}

	left := max((w-1)/2, 0)
	return []render.Region{
		render.NewRegion(a.screen, 0, 0, left, body),
		render.NewRegion(a.screen, left+1, 0, max(w-left-1, 0), body),
	}
}

func (a *app) draw() {
	w, h := a.screen.Size()
	a.screen.HideCursor()

	for _, cp := range a.panes {
		cp.pane.Draw()
	}
	if len(a.panes) > 1 {
		divider := tcell.StyleDefault.Background(a.style.Background).Foreground(a.style.Header)
		x := a.panes[1].pane.Region().X - 1
		for y := 0; y < h-1; y++ {
			a.screen.SetContent(x, y, '│', nil, divider)
		}
	}

	line := render.NewRegion(a.screen, 0, h-1, w, 1)
	style := tcell.StyleDefault.Background(a.style.Header).Foreground(tcell.ColorBlack)
	line.Fill(style)
	line.Text(1, 0, a.statusText(), style)
	line.TextRight(0, "Esc quit ", style)

	a.screen.Show()
}

// statusText summarizes focus and counters for the status line
func (a *app) statusText() string {
	focused, mode := "none", "-"
	for _, cp := range a.panes {
		if cp.session.Focused() {
			focused, mode = cp.name, cp.session.Mode().String()
		}
	}
	if focused == "none" && len(a.panes) > 0 {
		mode = a.panes[0].session.Mode().String()
	}

	return fmt.Sprintf("focus %s │ %s │ ticks %d │ keys %d/%d │ responses %d",
		focused, mode,
		a.stats.Value(status.Ticks),
		a.stats.Value(status.InputAccepted),
		a.stats.Value(status.InputDropped),
		a.stats.Value(status.InputResponses),
	)
}
