// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package app runs the engine loop: platform input is mapped to events,
// queued, and drained synchronously into the layer stack and the renderer.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/buff"
	"github.com/gogpu/buff/event"
	"github.com/gogpu/buff/layer"
	"github.com/gogpu/buff/platform"
	"github.com/gogpu/buff/render"
	"github.com/gogpu/buff/scene"
)

var (
	// ErrAlreadyRunning is returned by Run on an application that has
	// already been started.
	ErrAlreadyRunning = errors.New("app: already running")

	// ErrNoWindow is returned by New without a window.
	ErrNoWindow = errors.New("app: no window")
)

// State is the application lifecycle state.
type State int32

const (
	StateCreated State = iota
	StateRunning
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateRunning:
		return "Running"
	case StateClosing:
		return "Closing"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Renderer draws the scenes of one frame. *render.Renderer implements it.
type Renderer interface {
	Resize(width, height uint32) error
	Render(scenes ...scene.Scene) error
}

var _ Renderer = (*render.Renderer)(nil)

// Stats counts loop activity. Frames counts frames the renderer drew;
// Skipped counts render requests that drew nothing, either because the
// window had a zero dimension or because no surface texture was available.
type Stats struct {
	Events  uint64
	Frames  uint64
	Skipped uint64
	Dropped uint64
}

// Application owns the window, the layer stack and the event queue.
type Application struct {
	window   platform.Window
	renderer Renderer
	logger   *slog.Logger

	stack *layer.Stack
	queue *event.Queue
	state atomic.Int32
	err   error
	stats Stats

	// minimized is set while the window has a zero dimension.
	minimized bool
}

// New creates an application for window. Without WithRenderer the loop
// updates layers but draws nothing.
func New(window platform.Window, opts ...Option) (*Application, error) {
	if window == nil {
		return nil, ErrNoWindow
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Application{
		window:   window,
		renderer: o.renderer,
		logger:   o.logger,
		stack:    layer.NewStack(),
		queue:    event.NewQueue(),
	}, nil
}

func (a *Application) log() *slog.Logger {
	if a.logger != nil {
		return a.logger
	}
	return buff.Logger()
}

// PushLayer adds a layer below all overlays.
func (a *Application) PushLayer(l layer.Layer) { a.stack.PushLayer(l) }

// PushOverlay adds an overlay above everything pushed before.
func (a *Application) PushOverlay(l layer.Layer) { a.stack.PushOverlay(l) }

// Layers returns the application's layer stack.
func (a *Application) Layers() *layer.Stack { return a.stack }

// State returns the current lifecycle state.
func (a *Application) State() State { return State(a.state.Load()) }

// Stats returns loop counters.
func (a *Application) Stats() Stats {
	s := a.stats
	s.Dropped = a.queue.Dropped()
	return s
}

// Run drives the window until a WindowClosed event arrives or a renderer
// error other than a failed frame acquisition stops the loop, in which case
// that error is returned. Layers are detached before Run returns.
func (a *Application) Run() error {
	if !a.state.CompareAndSwap(int32(StateCreated), int32(StateRunning)) {
		return ErrAlreadyRunning
	}
	w, h := a.window.Size()
	a.minimized = w <= 0 || h <= 0
	a.log().Info("app: running", "width", w, "height", h, "layers", a.stack.Len())

	werr := a.window.Run(a.deliver)
	a.stack.Clear()
	if a.err != nil {
		return a.err
	}
	if werr != nil {
		return fmt.Errorf("window: %w", werr)
	}
	a.log().Info("app: closed", "frames", a.stats.Frames, "events", a.stats.Events)
	return nil
}

// deliver is the window callback: map, enqueue, drain.
func (a *Application) deliver(raw any) {
	if a.State() != StateRunning || a.err != nil {
		return
	}
	e, ok := platform.MapEvent(raw)
	if !ok {
		return
	}
	a.queue.Push(e)
	a.drain()
}

func (a *Application) drain() {
	for {
		e, ok := a.queue.TryPop()
		if !ok {
			return
		}
		a.handle(e)
	}
}

func (a *Application) handle(e event.Event) {
	a.stats.Events++

	switch ev := e.(type) {
	case event.WindowClosed:
		// Layers see the close but cannot veto it.
		a.stack.Dispatch(e)
		a.close()
		return
	case event.WindowResized:
		a.minimized = ev.Width == 0 || ev.Height == 0
		if a.renderer != nil {
			if err := a.renderer.Resize(ev.Width, ev.Height); err != nil {
				a.fail(fmt.Errorf("resize: %w", err))
				return
			}
		}
	case event.RenderRequested:
		a.stack.Update()
		if a.renderer != nil {
			if !a.render() {
				return
			}
		}
	}

	if h := a.stack.Dispatch(e); h != nil {
		a.log().Debug("app: event handled", "event", e.String(), "layer", h.Name())
	}
}

// render draws one frame and reports whether the loop continues.
func (a *Application) render() bool {
	if a.minimized {
		a.stats.Skipped++
		a.log().Debug("app: frame skipped, window minimized")
		return true
	}
	err := a.renderer.Render(a.stack.Scenes()...)
	switch {
	case err == nil:
		a.stats.Frames++
	case errors.Is(err, render.ErrAcquireFrame):
		a.stats.Skipped++
		a.log().Warn("app: frame skipped", "err", err)
	default:
		a.fail(fmt.Errorf("render: %w", err))
		return false
	}
	return true
}

// close enters Closing once and stops the window.
func (a *Application) close() {
	if !a.state.CompareAndSwap(int32(StateRunning), int32(StateClosing)) {
		return
	}
	a.queue.Close()
	a.window.Close()
	a.log().Debug("app: closing")
}

// fail stops the loop on an unrecoverable error without a close request.
func (a *Application) fail(err error) {
	a.err = err
	a.queue.Close()
	a.window.Close()
	a.log().Error("app: stopped", "err", err)
}
