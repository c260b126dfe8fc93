// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package event

import "fmt"

// Type identifies an event variant.
type Type uint8

const (
	TypeNone Type = iota
	TypeWindowClosed
	TypeWindowResized
	TypeRenderRequested
	TypeKeyPressed
	TypeKeyReleased
	TypeMouseButtonPressed
	TypeMouseButtonReleased
	TypeMouseMoved
	TypeMouseScrolled
	TypeOther
)

var typeNames = [...]string{
	TypeNone:                "None",
	TypeWindowClosed:        "WindowClosed",
	TypeWindowResized:       "WindowResized",
	TypeRenderRequested:     "RenderRequested",
	TypeKeyPressed:          "KeyPressed",
	TypeKeyReleased:         "KeyReleased",
	TypeMouseButtonPressed:  "MouseButtonPressed",
	TypeMouseButtonReleased: "MouseButtonReleased",
	TypeMouseMoved:          "MouseMoved",
	TypeMouseScrolled:       "MouseScrolled",
	TypeOther:               "Other",
}

// String returns the variant name.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Category is a bit set of event families.
type Category uint8

const (
	CategoryApplication Category = 1 << iota
	CategoryInput
	CategoryKeyboard
	CategoryMouse
	CategoryMouseButton
)

// Event is implemented only by the types in this package.
type Event interface {
	Type() Type
	Category() Category
	String() string

	isEvent()
}

// InCategory reports whether e belongs to any family in c.
func InCategory(e Event, c Category) bool {
	return e.Category()&c != 0
}

// WindowClosed is sent when the user asks to close the window. It always
// stops the application loop.
type WindowClosed struct{}

// WindowResized carries the new drawable size in pixels.
type WindowResized struct {
	Width, Height uint32
}

// RenderRequested asks for one update-and-draw tick.
type RenderRequested struct{}

// KeyPressed is sent on key down. Repeat is true for auto-repeat while the
// key stays held.
type KeyPressed struct {
	Key    Key
	Repeat bool
}

// KeyReleased is sent on key up.
type KeyReleased struct {
	Key Key
}

// MouseButtonPressed is sent on button down.
type MouseButtonPressed struct {
	Button MouseButton
}

// MouseButtonReleased is sent on button up.
type MouseButtonReleased struct {
	Button MouseButton
}

// MouseMoved carries the cursor position in window pixels, origin top-left.
type MouseMoved struct {
	X, Y float64
}

// MouseScrolled carries pixel scroll offsets.
type MouseScrolled struct {
	XOffset, YOffset float64
}

// Other wraps a platform event with no engine variant.
type Other struct {
	Name    string
	Payload any
}

func (WindowClosed) Type() Type        { return TypeWindowClosed }
func (WindowResized) Type() Type       { return TypeWindowResized }
func (RenderRequested) Type() Type     { return TypeRenderRequested }
func (KeyPressed) Type() Type          { return TypeKeyPressed }
func (KeyReleased) Type() Type         { return TypeKeyReleased }
func (MouseButtonPressed) Type() Type  { return TypeMouseButtonPressed }
func (MouseButtonReleased) Type() Type { return TypeMouseButtonReleased }
func (MouseMoved) Type() Type          { return TypeMouseMoved }
func (MouseScrolled) Type() Type       { return TypeMouseScrolled }
func (Other) Type() Type               { return TypeOther }

func (WindowClosed) Category() Category    { return CategoryApplication }
func (WindowResized) Category() Category   { return CategoryApplication }
func (RenderRequested) Category() Category { return CategoryApplication }
func (KeyPressed) Category() Category      { return CategoryKeyboard | CategoryInput }
func (KeyReleased) Category() Category     { return CategoryKeyboard | CategoryInput }
func (MouseButtonPressed) Category() Category {
	return CategoryMouseButton | CategoryMouse | CategoryInput
}
func (MouseButtonReleased) Category() Category {
	return CategoryMouseButton | CategoryMouse | CategoryInput
}
func (MouseMoved) Category() Category    { return CategoryMouse | CategoryInput }
func (MouseScrolled) Category() Category { return CategoryMouse | CategoryInput }
func (Other) Category() Category         { return 0 }

func (WindowClosed) String() string    { return "WindowClosed" }
func (RenderRequested) String() string { return "RenderRequested" }
func (e WindowResized) String() string {
	return fmt.Sprintf("WindowResized: %dx%d", e.Width, e.Height)
}
func (e KeyPressed) String() string {
	return fmt.Sprintf("KeyPressed: %s (repeat=%t)", KeyName(e.Key), e.Repeat)
}
func (e KeyReleased) String() string {
	return fmt.Sprintf("KeyReleased: %s", KeyName(e.Key))
}
func (e MouseButtonPressed) String() string {
	return fmt.Sprintf("MouseButtonPressed: %s", ButtonName(e.Button))
}
func (e MouseButtonReleased) String() string {
	return fmt.Sprintf("MouseButtonReleased: %s", ButtonName(e.Button))
}
func (e MouseMoved) String() string {
	return fmt.Sprintf("MouseMoved: %.1f, %.1f", e.X, e.Y)
}
func (e MouseScrolled) String() string {
	return fmt.Sprintf("MouseScrolled: %.1f, %.1f", e.XOffset, e.YOffset)
}
func (e Other) String() string {
	return fmt.Sprintf("Other: %s", e.Name)
}

func (WindowClosed) isEvent()        {}
func (WindowResized) isEvent()       {}
func (RenderRequested) isEvent()     {}
func (KeyPressed) isEvent()          {}
func (KeyReleased) isEvent()         {}
func (MouseButtonPressed) isEvent()  {}
func (MouseButtonReleased) isEvent() {}
func (MouseMoved) isEvent()          {}
func (MouseScrolled) isEvent()       {}
func (Other) isEvent()               {}

// Handle calls fn when e is a T and returns its result. It returns false
// for every other event.
func Handle[T Event](e Event, fn func(T) bool) bool {
	if v, ok := e.(T); ok {
		return fn(v)
	}
	return false
}
