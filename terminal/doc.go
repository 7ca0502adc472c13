// Package terminal adapts tcell screens and events to the console's key model
//
// Terminals report key presses only. Control chords arrive as a single
// event and are expanded into a control press, the chorded key and a control
// release so the console's ctrl latch behaves as it would with real key-up
// events.
package terminal
