package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen
	crashLogger = zerolog.Nop()
)

// SetCrashScreen registers the screen restored before a crash report is printed
func SetCrashScreen(s tcell.Screen) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// SetCrashLogger registers the logger that records crashes
func SetCrashLogger(l zerolog.Logger) {
	crashMu.Lock()
	crashLogger = l
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	screen := crashScreen
	logger := crashLogger
	crashMu.Unlock()

	stack := debug.Stack()

	// Restore terminal to sane state before writing to stderr
	if screen != nil {
		screen.Fini()
	}

	logger.Error().Interface("panic", r).Bytes("stack", stack).Msg("crash")

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
