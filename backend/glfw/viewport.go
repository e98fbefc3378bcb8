// Package glfw adapts a GLFW window into a virtlist.Viewport.
package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/virtlist"
)

// defaultWheelStep is the scroll distance per wheel notch, in pixels.
const defaultWheelStep = 30

// Viewport is a virtlist.Viewport backed by a glfw.Window. GLFW windows
// have no native scroll offset, so the viewport accumulates wheel input
// itself and clamps it to a host-supplied content bound.
//
// Like GLFW itself, Viewport must be used from the main thread.
type Viewport struct {
	window    *glfw.Window
	scroll    [2]float32 // accumulated offset per axis
	maxScroll [2]float32 // upper clamp bound per axis
	wheelStep float32
	onScroll  func()
}

// NewViewport wraps a GLFW window and installs its scroll callback.
func NewViewport(window *glfw.Window) *Viewport {
	v := &Viewport{
		window:    window,
		wheelStep: defaultWheelStep,
	}
	window.SetScrollCallback(v.scrollCallback)
	return v
}

// SetOnScroll registers the function invoked after wheel input changes
// the scroll position. Hosts wire this to Engine.OnScroll.
func (v *Viewport) SetOnScroll(fn func()) {
	v.onScroll = fn
}

// SetWheelStep overrides the pixels scrolled per wheel notch.
func (v *Viewport) SetWheelStep(pixels float32) {
	if pixels > 0 {
		v.wheelStep = pixels
	}
}

// SetMaxScroll updates the upper scroll bound for an axis. Hosts
// refresh this each frame from Engine.MaxScroll so wheel input cannot
// run past the content.
func (v *Viewport) SetMaxScroll(axis virtlist.Axis, max float32) {
	if max < 0 {
		max = 0
	}
	v.maxScroll[axis] = max
	if v.scroll[axis] > max {
		v.scroll[axis] = max
	}
}

// ScrollPos returns the accumulated scroll offset for the axis.
func (v *Viewport) ScrollPos(axis virtlist.Axis) float32 {
	return v.scroll[axis]
}

// ClientSize returns the window's client extent for the axis.
func (v *Viewport) ClientSize(axis virtlist.Axis) float32 {
	w, h := v.window.GetSize()
	if axis == virtlist.AxisHorizontal {
		return float32(w)
	}
	return float32(h)
}

// SetScrollPos moves the viewport, clamped to the content bound.
func (v *Viewport) SetScrollPos(axis virtlist.Axis, pos float32) {
	v.scroll[axis] = clamp(pos, 0, v.maxScroll[axis])
}

func (v *Viewport) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	// Wheel up (positive yoff) scrolls content toward the start.
	v.scroll[virtlist.AxisVertical] = clamp(
		v.scroll[virtlist.AxisVertical]-float32(yoff)*v.wheelStep,
		0, v.maxScroll[virtlist.AxisVertical])
	v.scroll[virtlist.AxisHorizontal] = clamp(
		v.scroll[virtlist.AxisHorizontal]-float32(xoff)*v.wheelStep,
		0, v.maxScroll[virtlist.AxisHorizontal])
	if v.onScroll != nil {
		v.onScroll()
	}
}

func clamp(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
