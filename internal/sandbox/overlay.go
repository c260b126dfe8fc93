// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sandbox

import (
	"github.com/gogpu/buff"
	"github.com/gogpu/buff/event"
	"github.com/gogpu/buff/layer"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DebugOverlay counts update ticks and events by type. F3 toggles it and
// is swallowed, so no layer below sees it.
type DebugOverlay struct {
	layer.Base

	visible bool
	ticks   int
	events  map[event.Type]int
	printer *message.Printer
}

// NewDebugOverlay returns a visible overlay.
func NewDebugOverlay() *DebugOverlay {
	return &DebugOverlay{
		visible: true,
		events:  make(map[event.Type]int),
		printer: message.NewPrinter(language.English),
	}
}

func (o *DebugOverlay) Name() string { return "Debug" }

func (o *DebugOverlay) OnAttach() { buff.Logger().Debug("sandbox: debug overlay attached") }
func (o *DebugOverlay) OnDetach() { buff.Logger().Debug("sandbox: debug overlay detached") }

func (o *DebugOverlay) Update() {
	o.ticks++
	if o.visible && o.ticks%600 == 0 {
		buff.Logger().Info("sandbox: stats", "summary", o.Summary())
	}
}

func (o *DebugOverlay) HandleEvent(e event.Event) bool {
	o.events[e.Type()]++
	return event.Handle(e, func(k event.KeyPressed) bool {
		if k.Key != event.KeyF3 {
			return false
		}
		if !k.Repeat {
			o.visible = !o.visible
		}
		return true
	})
}

// Visible reports whether the overlay is shown.
func (o *DebugOverlay) Visible() bool { return o.visible }

// Ticks returns the number of updates seen.
func (o *DebugOverlay) Ticks() int { return o.ticks }

// Count returns how many events of type t reached the overlay.
func (o *DebugOverlay) Count(t event.Type) int { return o.events[t] }

// Summary formats the counters for display.
func (o *DebugOverlay) Summary() string {
	total := 0
	for _, n := range o.events {
		total += n
	}
	return o.printer.Sprintf("%d ticks, %d events (%d key presses, %d mouse moves)",
		o.ticks, total, o.events[event.TypeKeyPressed], o.events[event.TypeMouseMoved])
}
