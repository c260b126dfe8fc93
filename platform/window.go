// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

import "errors"

// ErrWindowClosed is returned by Run on a window that was already closed.
var ErrWindowClosed = errors.New("platform: window closed")

// Window is the boundary between the engine and a windowing backend.
type Window interface {
	// Size returns the drawable size in pixels.
	Size() (width, height int)

	// Run pumps the backend, handing every raw event to deliver, and
	// returns once the window is closed. deliver is always called from
	// the goroutine that called Run.
	Run(deliver func(raw any)) error

	// Close stops Run. It is safe to call from deliver.
	Close()
}

// WindowProps describes the window an application asks for.
type WindowProps struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// DefaultWindowProps returns a 1280x720 window titled "BuffEngine".
func DefaultWindowProps() WindowProps {
	return WindowProps{
		Title:  "BuffEngine",
		Width:  1280,
		Height: 720,
		VSync:  true,
	}
}
