// Example demonstrates scrolling a 100,000-row virtual list in a GLFW
// window. Only the windowed slice is drawn; rows render as flat color
// bands via scissored clears so the demo needs no shader pipeline.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Scroll with the mouse wheel. Every 10th row is taller than the
// default estimate and reports its real height through MeasureItem.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/virtlist"
	glfwbackend "github.com/go-theft-auto/virtlist/backend/glfw"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "virtlist example"

	rowCount   = 100000
	defaultRow = 24
	tallRow    = 48
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Item list: row indices stand in for real data.
	rows := make([]int, rowCount)
	for i := range rows {
		rows[i] = i
	}

	// The engine is driven from the render loop: scroll events queue a
	// recalculation on the scheduler, Tick runs it once per frame.
	sched := virtlist.NewFrameScheduler()
	eng := virtlist.New(rows,
		virtlist.WithDefaultItemSize(defaultRow),
		virtlist.WithOverscan(4),
		virtlist.WithScheduler(sched),
	)

	viewport := glfwbackend.NewViewport(window)
	viewport.SetOnScroll(eng.OnScroll)
	eng.Attach(viewport)

	gl.Enable(gl.SCISSOR_TEST)

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()
		sched.Tick()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.Scissor(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		win := eng.Window()
		scrollY := viewport.ScrollPos(virtlist.AxisVertical)
		y := win.StartOffset - scrollY
		for i, row := range eng.VisibleItems() {
			index := win.StartIndex + i
			rowH := float32(defaultRow)
			if row%10 == 0 {
				rowH = tallRow
			}
			drawRow(index, y, rowH, float32(w), float32(h))

			// Report the rendered size; changed measurements coalesce
			// into one recalculation on the next Tick.
			eng.MeasureItem(eng.Key(index), rowH)
			y += rowH
		}

		// Scrollbar thumb along the right edge.
		thumbH, thumbY := eng.ScrollbarThumb(float32(h))
		fillRect(float32(w)-8, thumbY, 8, thumbH, float32(h), 0.55, 0.55, 0.60)

		// Keep the wheel clamp in sync with the measured content.
		viewport.SetMaxScroll(virtlist.AxisVertical, eng.MaxScroll())

		window.SwapBuffers()
	}

	return nil
}

// drawRow fills one row band, alternating shades so scrolling is visible.
func drawRow(index int, y, rowH, w, screenH float32) {
	shade := float32(0.20)
	if index%2 == 1 {
		shade = 0.25
	}
	if index%10 == 0 {
		shade = 0.32
	}
	fillRect(0, y, w, rowH, screenH, shade, shade, shade+0.05)
}

// fillRect clears a screen-space rectangle to a color. GL scissor
// coordinates are bottom-left origin, so Y flips.
func fillRect(x, y, w, h, screenH, r, g, b float32) {
	if y+h <= 0 || y >= screenH {
		return
	}
	gl.Scissor(int32(x), int32(screenH-y-h), int32(w), int32(h))
	gl.ClearColor(r, g, b, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
