// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

import (
	"fmt"

	"github.com/gogpu/buff"
	"github.com/gogpu/buff/event"
	"github.com/gogpu/gpucontext"
)

// MapEvent converts a raw platform value into an engine event. It reports
// false when the value is dropped: unrecognized input is logged at debug
// level, unmappable key and button codes at warn level. MapEvent never
// fails.
func MapEvent(raw any) (event.Event, bool) {
	switch e := raw.(type) {
	case CloseRequested:
		return event.WindowClosed{}, true
	case Resized:
		return event.WindowResized{Width: clampSize(e.Width), Height: clampSize(e.Height)}, true
	case RedrawRequested:
		return event.RenderRequested{}, true
	case KeyInput:
		return mapKey(e)
	case MouseInput:
		if !validButton(e.Button) {
			buff.Logger().Warn("platform: unmappable mouse button", "button", uint8(e.Button))
			return nil, false
		}
		if e.Pressed {
			return event.MouseButtonPressed{Button: e.Button}, true
		}
		return event.MouseButtonReleased{Button: e.Button}, true
	case CursorMoved:
		return event.MouseMoved{X: e.X, Y: e.Y}, true
	case Scrolled:
		return event.MouseScrolled{XOffset: e.DX, YOffset: e.DY}, true
	case FocusChanged:
		return event.Other{Name: "FocusChanged", Payload: e.Focused}, true
	case gpucontext.ScrollEvent:
		return mapScroll(e)
	case gpucontext.PointerEvent:
		return mapPointer(e)
	}
	buff.Logger().Debug("platform: unrecognized input dropped", "type", fmt.Sprintf("%T", raw))
	return nil, false
}

func clampSize(v int) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}

func mapKey(e KeyInput) (event.Event, bool) {
	if e.Key == gpucontext.KeyUnknown || e.Key > gpucontext.KeyPause {
		buff.Logger().Warn("platform: unmappable key", "code", uint16(e.Key))
		return nil, false
	}
	if e.Pressed {
		return event.KeyPressed{Key: e.Key, Repeat: e.Repeat}, true
	}
	return event.KeyReleased{Key: e.Key}, true
}

func validButton(b gpucontext.MouseButton) bool {
	switch b {
	case gpucontext.MouseButtonLeft, gpucontext.MouseButtonRight, gpucontext.MouseButtonMiddle,
		gpucontext.MouseButton4, gpucontext.MouseButton5:
		return true
	}
	return false
}

// mapScroll keeps pixel deltas only. Line and page deltas depend on
// metrics the engine does not know and are dropped.
func mapScroll(e gpucontext.ScrollEvent) (event.Event, bool) {
	if e.DeltaMode != gpucontext.ScrollDeltaPixel {
		buff.Logger().Debug("platform: non-pixel scroll dropped", "mode", e.DeltaMode.String())
		return nil, false
	}
	return event.MouseScrolled{XOffset: e.DeltaX, YOffset: e.DeltaY}, true
}

var pointerButtons = map[gpucontext.Button]gpucontext.MouseButton{
	gpucontext.ButtonLeft:   gpucontext.MouseButtonLeft,
	gpucontext.ButtonMiddle: gpucontext.MouseButtonMiddle,
	gpucontext.ButtonRight:  gpucontext.MouseButtonRight,
	gpucontext.ButtonX1:     gpucontext.MouseButton4,
	gpucontext.ButtonX2:     gpucontext.MouseButton5,
}

func mapPointer(e gpucontext.PointerEvent) (event.Event, bool) {
	switch e.Type {
	case gpucontext.PointerMove:
		return event.MouseMoved{X: e.X, Y: e.Y}, true
	case gpucontext.PointerDown, gpucontext.PointerUp:
		b, ok := pointerButtons[e.Button]
		if !ok {
			buff.Logger().Warn("platform: unmappable pointer button", "button", int8(e.Button))
			return nil, false
		}
		if e.Type == gpucontext.PointerDown {
			return event.MouseButtonPressed{Button: b}, true
		}
		return event.MouseButtonReleased{Button: b}, true
	}
	buff.Logger().Debug("platform: unrecognized pointer event dropped", "type", e.Type.String())
	return nil, false
}
