// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layer

import (
	"github.com/gogpu/buff"
	"github.com/gogpu/buff/event"
	"github.com/gogpu/buff/scene"
)

// Stack holds layers and overlays in push order.
//
// Overlays are drawn after layers and see events before them. Within each
// group the most recently pushed entry sees events first.
//
// A Stack is used from the application loop only and is not safe for
// concurrent use.
type Stack struct {
	layers   []Layer
	overlays []Layer
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// PushLayer appends l to the layers and attaches it.
func (s *Stack) PushLayer(l Layer) {
	s.layers = append(s.layers, l)
	l.OnAttach()
	buff.Logger().Debug("layer: pushed", "name", l.Name(), "layers", len(s.layers))
}

// PushOverlay appends l to the overlays and attaches it.
func (s *Stack) PushOverlay(l Layer) {
	s.overlays = append(s.overlays, l)
	l.OnAttach()
	buff.Logger().Debug("layer: pushed overlay", "name", l.Name(), "overlays", len(s.overlays))
}

// PopLayer detaches and removes the most recently pushed layer.
func (s *Stack) PopLayer() (Layer, bool) {
	l, ok := pop(&s.layers)
	if ok {
		buff.Logger().Debug("layer: popped", "name", l.Name())
	}
	return l, ok
}

// PopOverlay detaches and removes the most recently pushed overlay.
func (s *Stack) PopOverlay() (Layer, bool) {
	l, ok := pop(&s.overlays)
	if ok {
		buff.Logger().Debug("layer: popped overlay", "name", l.Name())
	}
	return l, ok
}

func pop(list *[]Layer) (Layer, bool) {
	n := len(*list)
	if n == 0 {
		return nil, false
	}
	l := (*list)[n-1]
	(*list)[n-1] = nil
	*list = (*list)[:n-1]
	l.OnDetach()
	return l, true
}

// Clear pops every overlay and then every layer, newest first.
func (s *Stack) Clear() {
	for len(s.overlays) > 0 {
		s.PopOverlay()
	}
	for len(s.layers) > 0 {
		s.PopLayer()
	}
}

// Len returns the total number of layers and overlays.
func (s *Stack) Len() int {
	return len(s.layers) + len(s.overlays)
}

// Update calls Update on every layer and then every overlay, in push order.
func (s *Stack) Update() {
	for _, l := range s.layers {
		l.Update()
	}
	for _, l := range s.overlays {
		l.Update()
	}
}

// Dispatch offers e to overlays and then layers, newest first, and stops
// at the first one that handles it. It returns the handling layer, or nil.
func (s *Stack) Dispatch(e event.Event) Layer {
	if l := dispatchReverse(s.overlays, e); l != nil {
		return l
	}
	return dispatchReverse(s.layers, e)
}

func dispatchReverse(list []Layer, e event.Event) Layer {
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].HandleEvent(e) {
			return list[i]
		}
	}
	return nil
}

// Scenes returns the scenes exposed by layers and then overlays, in push
// order, which is back-to-front draw order.
func (s *Stack) Scenes() []scene.Scene {
	var scenes []scene.Scene
	for _, group := range [2][]Layer{s.layers, s.overlays} {
		for _, l := range group {
			if sc, ok := l.AsScene(); ok && sc != nil {
				scenes = append(scenes, sc)
			}
		}
	}
	return scenes
}

// All returns layers followed by overlays, in push order.
func (s *Stack) All() []Layer {
	out := make([]Layer, 0, s.Len())
	out = append(out, s.layers...)
	return append(out, s.overlays...)
}
