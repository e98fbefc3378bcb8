package virtlist

import (
	"log/slog"
	"os"
)

// virtLogLevel controls the log level for windowing debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var virtLogLevel = new(slog.LevelVar)

// virtLogger is the logger for windowing debug output.
var virtLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: virtLogLevel}))

// SetVerbose enables or disables debug logging for the windowing engine.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		virtLogLevel.Set(slog.LevelDebug)
	} else {
		virtLogLevel.Set(slog.LevelInfo)
	}
}

// Viewport is the host-owned scrollable element the engine observes.
// The engine never creates or destroys viewports; the host attaches one
// with Engine.Attach and may swap or remove it at any time.
//
// ScrollPos and ClientSize are read on every recalculation. SetScrollPos
// is written by ScrollToIndex and EnsureVisible. Implementations report
// whichever physical properties match the requested axis.
type Viewport interface {
	// ScrollPos returns the current leading-edge scroll offset in pixels.
	ScrollPos(axis Axis) float32

	// ClientSize returns the visible extent of the viewport in pixels.
	ClientSize(axis Axis) float32

	// SetScrollPos moves the viewport to the given scroll offset.
	SetScrollPos(axis Axis, pos float32)
}
