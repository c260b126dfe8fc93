// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

import (
	"testing"

	"github.com/gogpu/buff/event"
	"github.com/gogpu/gpucontext"
)

func TestMapEvent(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want event.Event
	}{
		{"close", CloseRequested{}, event.WindowClosed{}},
		{"resize", Resized{Width: 800, Height: 600}, event.WindowResized{Width: 800, Height: 600}},
		{"negative resize clamps", Resized{Width: -1, Height: 10}, event.WindowResized{Width: 0, Height: 10}},
		{"redraw", RedrawRequested{}, event.RenderRequested{}},
		{"key press", KeyInput{Key: gpucontext.KeyW, Pressed: true}, event.KeyPressed{Key: event.KeyW}},
		{"key repeat", KeyInput{Key: gpucontext.KeyW, Pressed: true, Repeat: true}, event.KeyPressed{Key: event.KeyW, Repeat: true}},
		{"key release", KeyInput{Key: gpucontext.KeyEscape}, event.KeyReleased{Key: event.KeyEscape}},
		{"mouse press", MouseInput{Button: gpucontext.MouseButtonLeft, Pressed: true}, event.MouseButtonPressed{Button: event.MouseButtonLeft}},
		{"mouse release", MouseInput{Button: gpucontext.MouseButton5}, event.MouseButtonReleased{Button: event.MouseButton5}},
		{"cursor", CursorMoved{X: 1.5, Y: 2.5}, event.MouseMoved{X: 1.5, Y: 2.5}},
		{"wheel", Scrolled{DX: 0, DY: -3}, event.MouseScrolled{XOffset: 0, YOffset: -3}},
		{"focus", FocusChanged{Focused: true}, event.Other{Name: "FocusChanged", Payload: true}},
		{
			"pixel scroll event",
			gpucontext.ScrollEvent{DeltaX: 4, DeltaY: 8, DeltaMode: gpucontext.ScrollDeltaPixel},
			event.MouseScrolled{XOffset: 4, YOffset: 8},
		},
		{
			"pointer move",
			gpucontext.PointerEvent{Type: gpucontext.PointerMove, X: 3, Y: 4, Button: gpucontext.ButtonNone},
			event.MouseMoved{X: 3, Y: 4},
		},
		{
			"pointer down",
			gpucontext.PointerEvent{Type: gpucontext.PointerDown, Button: gpucontext.ButtonRight},
			event.MouseButtonPressed{Button: event.MouseButtonRight},
		},
		{
			"pointer up X1",
			gpucontext.PointerEvent{Type: gpucontext.PointerUp, Button: gpucontext.ButtonX1},
			event.MouseButtonReleased{Button: event.MouseButton4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapEvent(tt.raw)
			if !ok {
				t.Fatalf("MapEvent(%#v) dropped the event", tt.raw)
			}
			if got != tt.want {
				t.Errorf("MapEvent(%#v) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestMapEventDrops(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{"nil", nil},
		{"unknown type", struct{ X int }{1}},
		{"text input", TextInput{Text: "a"}},
		{"unknown key", KeyInput{Key: gpucontext.KeyUnknown, Pressed: true}},
		{"key out of range", KeyInput{Key: gpucontext.KeyPause + 1, Pressed: true}},
		{"unknown mouse button", MouseInput{Button: gpucontext.MouseButton(42), Pressed: true}},
		{"line scroll", gpucontext.ScrollEvent{DeltaY: 1, DeltaMode: gpucontext.ScrollDeltaLine}},
		{"page scroll", gpucontext.ScrollEvent{DeltaY: 1, DeltaMode: gpucontext.ScrollDeltaPage}},
		{"pointer enter", gpucontext.PointerEvent{Type: gpucontext.PointerEnter}},
		{"pointer cancel", gpucontext.PointerEvent{Type: gpucontext.PointerCancel}},
		{"eraser", gpucontext.PointerEvent{Type: gpucontext.PointerDown, Button: gpucontext.ButtonEraser}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := MapEvent(tt.raw); ok || got != nil {
				t.Errorf("MapEvent(%#v) = %v, %v; want nil, false", tt.raw, got, ok)
			}
		})
	}
}
