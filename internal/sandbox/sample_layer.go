// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sandbox

import (
	"github.com/gogpu/buff"
	"github.com/gogpu/buff/event"
	"github.com/gogpu/buff/layer"
)

// SampleLayer logs its lifecycle and every event that reaches it, and
// handles nothing.
type SampleLayer struct {
	layer.Base
	seen int
}

func (l *SampleLayer) Name() string { return "Sample" }

func (l *SampleLayer) OnAttach() { buff.Logger().Debug("sandbox: sample layer attached") }
func (l *SampleLayer) OnDetach() { buff.Logger().Debug("sandbox: sample layer detached") }

func (l *SampleLayer) HandleEvent(e event.Event) bool {
	l.seen++
	buff.Logger().Debug("sandbox: sample layer event", "event", e.String())
	return false
}

// Seen returns how many events reached the layer.
func (l *SampleLayer) Seen() int { return l.seen }
