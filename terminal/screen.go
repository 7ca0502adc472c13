package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-console/core"
)

// Open initializes the terminal screen and registers it for crash restoration
func Open(mouse bool) (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault)
	if mouse {
		screen.EnableMouse(tcell.MouseButtonEvents)
	}
	screen.Clear()

	core.SetCrashScreen(screen)
	return screen, nil
}

// Close restores the terminal
func Close(screen tcell.Screen) {
	if screen == nil {
		return
	}
	screen.DisableMouse()
	screen.Fini()
}
