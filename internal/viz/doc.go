// Package viz provides the terminal visualization of a running
// simulation.
//
// The package implements an interactive TUI using the Bubble Tea
// framework:
//
//   - [Model]: the Bubble Tea model ticking the simulator at 60 fps
//   - [Canvas]: Braille-based pixel canvas for orbit rendering
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reset to initial state
//	+/-   - Zoom in/out
//	?     - Show help overlay
//	Q     - Quit
package viz
