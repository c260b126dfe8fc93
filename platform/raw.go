// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

import "github.com/gogpu/gpucontext"

// Raw events produced by windowing backends. Pointer and scroll input may
// also arrive as gpucontext.PointerEvent and gpucontext.ScrollEvent.
type (
	// CloseRequested is sent when the user asks to close the window.
	CloseRequested struct{}

	// Resized carries the new drawable size in pixels.
	Resized struct {
		Width, Height int
	}

	// RedrawRequested asks for a new frame.
	RedrawRequested struct{}

	// KeyInput is a key transition. Repeat is set for auto-repeat presses
	// while the key is held.
	KeyInput struct {
		Key     gpucontext.Key
		Mods    gpucontext.Modifiers
		Pressed bool
		Repeat  bool
	}

	// MouseInput is a mouse button transition at a cursor position.
	MouseInput struct {
		Button  gpucontext.MouseButton
		Pressed bool
		X, Y    float64
	}

	// CursorMoved carries the cursor position in window pixels.
	CursorMoved struct {
		X, Y float64
	}

	// Scrolled carries wheel offsets in pixels.
	Scrolled struct {
		DX, DY float64
	}

	// FocusChanged reports the window gaining or losing keyboard focus.
	FocusChanged struct {
		Focused bool
	}

	// TextInput carries composed text. The engine has no text input and
	// drops it.
	TextInput struct {
		Text string
	}
)
