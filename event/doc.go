// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package event defines the closed set of engine events and the queue that
// carries them from platform callbacks to the application loop.
//
// Events are plain values. They fall into three families:
//
//   - application: [WindowClosed], [WindowResized], [RenderRequested]
//   - mouse: [MouseButtonPressed], [MouseButtonReleased], [MouseMoved], [MouseScrolled]
//   - keyboard: [KeyPressed], [KeyReleased]
//
// [Other] carries platform events the engine has no variant for.
//
// Handlers usually switch on the concrete type, or use [Handle]:
//
//	func (l *Player) HandleEvent(e event.Event) bool {
//	    return event.Handle(e, func(k event.KeyPressed) bool {
//	        return k.Key == event.KeySpace
//	    })
//	}
package event
