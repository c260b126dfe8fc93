// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package event

import (
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Key identifies a physical key. The engine shares its key vocabulary with
// gpucontext so platform integrations need no translation table.
type Key = gpucontext.Key

// MouseButton identifies a mouse button.
type MouseButton = gpucontext.MouseButton

// Keys used by the engine and its samples. Every other gpucontext key is a
// valid Key too.
const (
	KeyUnknown = gpucontext.KeyUnknown
	KeyA       = gpucontext.KeyA
	KeyD       = gpucontext.KeyD
	KeyS       = gpucontext.KeyS
	KeyW       = gpucontext.KeyW
	KeyZ       = gpucontext.KeyZ
	Key0       = gpucontext.Key0
	Key9       = gpucontext.Key9
	KeyF1      = gpucontext.KeyF1
	KeyF3      = gpucontext.KeyF3
	KeyF12     = gpucontext.KeyF12
	KeyEscape  = gpucontext.KeyEscape
	KeyEnter   = gpucontext.KeyEnter
	KeySpace   = gpucontext.KeySpace
	KeyLeft    = gpucontext.KeyLeft
	KeyRight   = gpucontext.KeyRight
	KeyUp      = gpucontext.KeyUp
	KeyDown    = gpucontext.KeyDown
	KeyPause   = gpucontext.KeyPause
)

const (
	MouseButtonLeft   = gpucontext.MouseButtonLeft
	MouseButtonRight  = gpucontext.MouseButtonRight
	MouseButtonMiddle = gpucontext.MouseButtonMiddle
	MouseButton4      = gpucontext.MouseButton4
	MouseButton5      = gpucontext.MouseButton5
)

var keyNames = map[Key]string{
	gpucontext.KeyEscape:       "Escape",
	gpucontext.KeyTab:          "Tab",
	gpucontext.KeyBackspace:    "Backspace",
	gpucontext.KeyEnter:        "Enter",
	gpucontext.KeySpace:        "Space",
	gpucontext.KeyInsert:       "Insert",
	gpucontext.KeyDelete:       "Delete",
	gpucontext.KeyHome:         "Home",
	gpucontext.KeyEnd:          "End",
	gpucontext.KeyPageUp:       "PageUp",
	gpucontext.KeyPageDown:     "PageDown",
	gpucontext.KeyLeft:         "Left",
	gpucontext.KeyRight:        "Right",
	gpucontext.KeyUp:           "Up",
	gpucontext.KeyDown:         "Down",
	gpucontext.KeyLeftShift:    "LeftShift",
	gpucontext.KeyRightShift:   "RightShift",
	gpucontext.KeyLeftControl:  "LeftControl",
	gpucontext.KeyRightControl: "RightControl",
	gpucontext.KeyLeftAlt:      "LeftAlt",
	gpucontext.KeyRightAlt:     "RightAlt",
	gpucontext.KeyPause:        "Pause",
}

// KeyName returns a short name for k, such as "A", "7", "F3" or "Escape".
func KeyName(k Key) string {
	switch {
	case k >= gpucontext.KeyA && k <= gpucontext.KeyZ:
		return string(rune('A' + int(k-gpucontext.KeyA)))
	case k >= gpucontext.Key0 && k <= gpucontext.Key9:
		return string(rune('0' + int(k-gpucontext.Key0)))
	case k >= gpucontext.KeyF1 && k <= gpucontext.KeyF12:
		return fmt.Sprintf("F%d", int(k-gpucontext.KeyF1)+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// ButtonName returns a short name for b.
func ButtonName(b MouseButton) string {
	switch b {
	case gpucontext.MouseButtonLeft:
		return "Left"
	case gpucontext.MouseButtonRight:
		return "Right"
	case gpucontext.MouseButtonMiddle:
		return "Middle"
	case gpucontext.MouseButton4:
		return "Button4"
	case gpucontext.MouseButton5:
		return "Button5"
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}
