// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

import (
	"sync"

	"github.com/gogpu/gpucontext"
)

// Step is one scripted action of a Headless window. Run requests a redraw
// after every step.
type Step func(h *Headless)

// Headless is a window without an operating system behind it. It plays a
// script of input steps through the gpucontext callbacks, requesting a
// frame after each, then asks to close.
type Headless struct {
	props WindowProps
	steps []Step

	mu      sync.Mutex
	width   int
	height  int
	closed  bool
	deliver func(any)
	redraws int

	onKeyPress    []func(gpucontext.Key, gpucontext.Modifiers)
	onKeyRelease  []func(gpucontext.Key, gpucontext.Modifiers)
	onTextInput   []func(string)
	onMouseMove   []func(float64, float64)
	onMousePress  []func(gpucontext.MouseButton, float64, float64)
	onMouseUp     []func(gpucontext.MouseButton, float64, float64)
	onScroll      []func(float64, float64)
	onScrollEvent []func(gpucontext.ScrollEvent)
	onResize      []func(int, int)
	onFocus       []func(bool)
}

var (
	_ Window                       = (*Headless)(nil)
	_ gpucontext.EventSource       = (*Headless)(nil)
	_ gpucontext.ScrollEventSource = (*Headless)(nil)
	_ gpucontext.WindowProvider    = (*Headless)(nil)
)

// NewHeadless returns a headless window of props' size that will play
// steps when run.
func NewHeadless(props WindowProps, steps ...Step) *Headless {
	return &Headless{
		props:  props,
		steps:  steps,
		width:  props.Width,
		height: props.Height,
	}
}

// Props returns the properties the window was created with.
func (h *Headless) Props() WindowProps { return h.props }

// Size returns the current drawable size.
func (h *Headless) Size() (width, height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.width, h.height
}

// ScaleFactor is always 1.
func (h *Headless) ScaleFactor() float64 { return 1 }

// RequestRedraw delivers a RedrawRequested while the window runs.
func (h *Headless) RequestRedraw() {
	h.mu.Lock()
	deliver := h.deliver
	if deliver == nil || h.closed {
		h.mu.Unlock()
		return
	}
	h.redraws++
	h.mu.Unlock()
	deliver(RedrawRequested{})
}

// Redraws returns how many redraws were delivered.
func (h *Headless) Redraws() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.redraws
}

// Run attaches a Bridge to the window, plays the script and finally
// delivers CloseRequested unless the window was closed on the way. The
// window is closed when Run returns.
func (h *Headless) Run(deliver func(raw any)) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrWindowClosed
	}
	h.deliver = deliver
	h.mu.Unlock()

	NewBridge(deliver).Attach(h)
	for _, step := range h.steps {
		if h.isClosed() {
			return nil
		}
		step(h)
		h.RequestRedraw()
	}
	if !h.isClosed() {
		deliver(CloseRequested{})
		h.Close()
	}
	return nil
}

// Close stops Run after the current step.
func (h *Headless) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
}

func (h *Headless) isClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

// gpucontext.EventSource

func (h *Headless) OnKeyPress(fn func(gpucontext.Key, gpucontext.Modifiers)) {
	h.onKeyPress = append(h.onKeyPress, fn)
}

func (h *Headless) OnKeyRelease(fn func(gpucontext.Key, gpucontext.Modifiers)) {
	h.onKeyRelease = append(h.onKeyRelease, fn)
}

func (h *Headless) OnTextInput(fn func(string)) {
	h.onTextInput = append(h.onTextInput, fn)
}

func (h *Headless) OnMouseMove(fn func(x, y float64)) {
	h.onMouseMove = append(h.onMouseMove, fn)
}

func (h *Headless) OnMousePress(fn func(gpucontext.MouseButton, float64, float64)) {
	h.onMousePress = append(h.onMousePress, fn)
}

func (h *Headless) OnMouseRelease(fn func(gpucontext.MouseButton, float64, float64)) {
	h.onMouseUp = append(h.onMouseUp, fn)
}

func (h *Headless) OnScroll(fn func(dx, dy float64)) {
	h.onScroll = append(h.onScroll, fn)
}

func (h *Headless) OnScrollEvent(fn func(gpucontext.ScrollEvent)) {
	h.onScrollEvent = append(h.onScrollEvent, fn)
}

func (h *Headless) OnResize(fn func(width, height int)) {
	h.onResize = append(h.onResize, fn)
}

func (h *Headless) OnFocus(fn func(bool)) {
	h.onFocus = append(h.onFocus, fn)
}

func (h *Headless) OnIMECompositionStart(func())                     {}
func (h *Headless) OnIMECompositionUpdate(func(gpucontext.IMEState)) {}
func (h *Headless) OnIMECompositionEnd(func(string))                 {}

// Script steps.

// Idle does nothing; the step only produces a frame.
func Idle() Step { return func(*Headless) {} }

// Frames returns n idle steps.
func Frames(n int) []Step {
	steps := make([]Step, n)
	for i := range steps {
		steps[i] = Idle()
	}
	return steps
}

// PressKey presses k without releasing it.
func PressKey(k gpucontext.Key) Step {
	return func(h *Headless) {
		for _, fn := range h.onKeyPress {
			fn(k, 0)
		}
	}
}

// ReleaseKey releases k.
func ReleaseKey(k gpucontext.Key) Step {
	return func(h *Headless) {
		for _, fn := range h.onKeyRelease {
			fn(k, 0)
		}
	}
}

// TapKey presses and releases k.
func TapKey(k gpucontext.Key) Step {
	press, release := PressKey(k), ReleaseKey(k)
	return func(h *Headless) {
		press(h)
		release(h)
	}
}

// TypeText delivers composed text.
func TypeText(text string) Step {
	return func(h *Headless) {
		for _, fn := range h.onTextInput {
			fn(text)
		}
	}
}

// MoveMouse moves the cursor to (x, y).
func MoveMouse(x, y float64) Step {
	return func(h *Headless) {
		for _, fn := range h.onMouseMove {
			fn(x, y)
		}
	}
}

// Click presses and releases b at (x, y).
func Click(b gpucontext.MouseButton, x, y float64) Step {
	return func(h *Headless) {
		for _, fn := range h.onMousePress {
			fn(b, x, y)
		}
		for _, fn := range h.onMouseUp {
			fn(b, x, y)
		}
	}
}

// Scroll scrolls by (dx, dy) in the given delta mode.
func Scroll(dx, dy float64, mode gpucontext.ScrollDeltaMode) Step {
	return func(h *Headless) {
		if len(h.onScrollEvent) > 0 {
			e := gpucontext.ScrollEvent{DeltaX: dx, DeltaY: dy, DeltaMode: mode}
			for _, fn := range h.onScrollEvent {
				fn(e)
			}
			return
		}
		for _, fn := range h.onScroll {
			fn(dx, dy)
		}
	}
}

// Resize changes the drawable size.
func Resize(width, height int) Step {
	return func(h *Headless) {
		h.mu.Lock()
		h.width, h.height = width, height
		h.mu.Unlock()
		for _, fn := range h.onResize {
			fn(width, height)
		}
	}
}

// Focus gains or loses focus.
func Focus(focused bool) Step {
	return func(h *Headless) {
		for _, fn := range h.onFocus {
			fn(focused)
		}
	}
}

// Send delivers raw as is, for input the callbacks cannot express.
func Send(raw any) Step {
	return func(h *Headless) {
		h.mu.Lock()
		deliver := h.deliver
		h.mu.Unlock()
		if deliver != nil {
			deliver(raw)
		}
	}
}
