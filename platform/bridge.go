// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

import (
	"sync"

	"github.com/gogpu/buff"
	"github.com/gogpu/gpucontext"
)

// Bridge turns gpucontext.EventSource callbacks into raw values for a
// deliver function. Backends report every key press alike, so Bridge
// derives KeyInput.Repeat from the keys it has seen go down and not up.
type Bridge struct {
	deliver func(any)

	mu   sync.Mutex
	held map[gpucontext.Key]bool
}

// NewBridge returns a Bridge feeding deliver.
func NewBridge(deliver func(raw any)) *Bridge {
	return &Bridge{
		deliver: deliver,
		held:    make(map[gpucontext.Key]bool),
	}
}

// Attach registers the bridge's callbacks on src. Scrolling is taken from
// OnScrollEvent when src implements gpucontext.ScrollEventSource. Plain
// OnScroll deltas carry no unit, so they are logged and dropped.
func (b *Bridge) Attach(src gpucontext.EventSource) {
	src.OnKeyPress(b.keyPress)
	src.OnKeyRelease(b.keyRelease)
	src.OnTextInput(func(text string) {
		b.deliver(TextInput{Text: text})
	})
	src.OnMouseMove(func(x, y float64) {
		b.deliver(CursorMoved{X: x, Y: y})
	})
	src.OnMousePress(func(button gpucontext.MouseButton, x, y float64) {
		b.deliver(MouseInput{Button: button, Pressed: true, X: x, Y: y})
	})
	src.OnMouseRelease(func(button gpucontext.MouseButton, x, y float64) {
		b.deliver(MouseInput{Button: button, X: x, Y: y})
	})
	if ss, ok := src.(gpucontext.ScrollEventSource); ok {
		ss.OnScrollEvent(func(e gpucontext.ScrollEvent) {
			b.deliver(e)
		})
	} else {
		src.OnScroll(func(dx, dy float64) {
			buff.Logger().Debug("platform: scroll without delta mode dropped", "dx", dx, "dy", dy)
		})
	}
	src.OnResize(func(width, height int) {
		b.deliver(Resized{Width: width, Height: height})
	})
	src.OnFocus(b.focus)
}

func (b *Bridge) keyPress(key gpucontext.Key, mods gpucontext.Modifiers) {
	b.mu.Lock()
	repeat := b.held[key]
	b.held[key] = true
	b.mu.Unlock()

	b.deliver(KeyInput{Key: key, Mods: mods, Pressed: true, Repeat: repeat})
}

func (b *Bridge) keyRelease(key gpucontext.Key, mods gpucontext.Modifiers) {
	b.mu.Lock()
	delete(b.held, key)
	b.mu.Unlock()

	b.deliver(KeyInput{Key: key, Mods: mods})
}

// focus forgets held keys on focus loss; their releases go elsewhere.
func (b *Bridge) focus(focused bool) {
	if !focused {
		b.mu.Lock()
		clear(b.held)
		b.mu.Unlock()
	}
	b.deliver(FocusChanged{Focused: focused})
}
