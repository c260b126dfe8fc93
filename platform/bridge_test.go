// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

import (
	"testing"

	"github.com/gogpu/gpucontext"
)

// recorder collects raw values delivered by a Bridge.
type recorder struct {
	raws []any
}

func (r *recorder) deliver(raw any) { r.raws = append(r.raws, raw) }

func (r *recorder) keys() []KeyInput {
	var out []KeyInput
	for _, raw := range r.raws {
		if k, ok := raw.(KeyInput); ok {
			out = append(out, k)
		}
	}
	return out
}

func TestBridgeKeyRepeat(t *testing.T) {
	h := NewHeadless(DefaultWindowProps())
	rec := &recorder{}
	NewBridge(rec.deliver).Attach(h)

	PressKey(gpucontext.KeyW)(h)
	PressKey(gpucontext.KeyW)(h)
	PressKey(gpucontext.KeyW)(h)
	ReleaseKey(gpucontext.KeyW)(h)
	PressKey(gpucontext.KeyW)(h)

	want := []KeyInput{
		{Key: gpucontext.KeyW, Pressed: true},
		{Key: gpucontext.KeyW, Pressed: true, Repeat: true},
		{Key: gpucontext.KeyW, Pressed: true, Repeat: true},
		{Key: gpucontext.KeyW},
		{Key: gpucontext.KeyW, Pressed: true},
	}
	got := rec.keys()
	if len(got) != len(want) {
		t.Fatalf("got %d key inputs, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key input %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBridgeFocusLossForgetsHeldKeys(t *testing.T) {
	h := NewHeadless(DefaultWindowProps())
	rec := &recorder{}
	NewBridge(rec.deliver).Attach(h)

	PressKey(gpucontext.KeyA)(h)
	Focus(false)(h)
	PressKey(gpucontext.KeyA)(h)

	keys := rec.keys()
	if len(keys) != 2 {
		t.Fatalf("got %d key inputs, want 2", len(keys))
	}
	if keys[1].Repeat {
		t.Error("press after focus loss reported as repeat")
	}
	if rec.raws[1] != (FocusChanged{Focused: false}) {
		t.Errorf("raw[1] = %#v, want FocusChanged{false}", rec.raws[1])
	}
}

func TestBridgeForwardsPointerInput(t *testing.T) {
	h := NewHeadless(DefaultWindowProps())
	rec := &recorder{}
	NewBridge(rec.deliver).Attach(h)

	MoveMouse(10, 20)(h)
	Click(gpucontext.MouseButtonRight, 10, 20)(h)
	Resize(640, 480)(h)

	want := []any{
		CursorMoved{X: 10, Y: 20},
		MouseInput{Button: gpucontext.MouseButtonRight, Pressed: true, X: 10, Y: 20},
		MouseInput{Button: gpucontext.MouseButtonRight, X: 10, Y: 20},
		Resized{Width: 640, Height: 480},
	}
	if len(rec.raws) != len(want) {
		t.Fatalf("got %d raws, want %d: %v", len(rec.raws), len(want), rec.raws)
	}
	for i := range want {
		if rec.raws[i] != want[i] {
			t.Errorf("raw %d = %#v, want %#v", i, rec.raws[i], want[i])
		}
	}
}

// plainSource implements only gpucontext.EventSource.
type plainSource struct {
	gpucontext.NullEventSource
	scroll func(dx, dy float64)
}

func (s *plainSource) OnScroll(fn func(dx, dy float64)) { s.scroll = fn }

func TestBridgeScrollSource(t *testing.T) {
	t.Run("scroll event source", func(t *testing.T) {
		h := NewHeadless(DefaultWindowProps())
		rec := &recorder{}
		NewBridge(rec.deliver).Attach(h)

		Scroll(0, 2, gpucontext.ScrollDeltaLine)(h)
		if len(rec.raws) != 1 {
			t.Fatalf("got %d raws, want 1", len(rec.raws))
		}
		e, ok := rec.raws[0].(gpucontext.ScrollEvent)
		if !ok || e.DeltaMode != gpucontext.ScrollDeltaLine || e.DeltaY != 2 {
			t.Errorf("raw = %#v, want line ScrollEvent", rec.raws[0])
		}
	})

	t.Run("plain source", func(t *testing.T) {
		src := &plainSource{}
		rec := &recorder{}
		NewBridge(rec.deliver).Attach(src)
		if src.scroll == nil {
			t.Fatal("OnScroll not subscribed")
		}
		src.scroll(1, -1)
		if len(rec.raws) != 0 {
			t.Errorf("raws = %#v, want unitless scroll dropped", rec.raws)
		}
	})
}
