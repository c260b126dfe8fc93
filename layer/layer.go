// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package layer provides the Layer interface and the Stack that orders
// layers and overlays for updates, event dispatch and drawing.
package layer

import (
	"github.com/gogpu/buff/event"
	"github.com/gogpu/buff/scene"
)

// Layer is one unit of game or tool logic.
//
// Embed Base to get no-op lifecycle hooks and no scene.
type Layer interface {
	// Name identifies the layer in logs.
	Name() string

	// OnAttach is called when the layer is pushed onto a Stack.
	OnAttach()

	// OnDetach is called when the layer is popped from a Stack.
	OnDetach()

	// Update runs once per render tick, before drawing.
	Update()

	// HandleEvent reports whether the layer consumed e. A consumed event
	// is not offered to any lower layer.
	HandleEvent(e event.Event) bool

	// AsScene returns the drawable state of the layer, or false if the
	// layer draws nothing.
	AsScene() (scene.Scene, bool)
}

// Base implements every Layer method except Name with defaults: no-op
// hooks, events left unhandled, and no scene.
type Base struct{}

func (Base) OnAttach()                    {}
func (Base) OnDetach()                    {}
func (Base) Update()                      {}
func (Base) HandleEvent(event.Event) bool { return false }
func (Base) AsScene() (scene.Scene, bool) { return nil, false }
