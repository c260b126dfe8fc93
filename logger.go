// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package buff

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/wgpu/hal"
)

// silentHandler drops every record. Enabled is false at all levels, so
// log calls return before their attributes are built.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (silentHandler) WithAttrs([]slog.Attr) slog.Handler        { return silentHandler{} }
func (silentHandler) WithGroup(string) slog.Handler             { return silentHandler{} }

var (
	silent = slog.New(silentHandler{})

	current atomic.Pointer[slog.Logger]
)

func init() { current.Store(silent) }

// SetLogger routes engine diagnostics to l, and hands l to the wgpu HAL
// as well so GPU backend messages land next to engine messages. A nil l
// turns logging off again, which is also the state at startup.
//
// What each level carries:
//   - [slog.LevelDebug]: input the platform layer could not map, frame
//     details, shader compiles
//   - [slog.LevelInfo]: adapter selection, application start and stop
//   - [slog.LevelWarn]: unknown key or button codes, suboptimal surfaces,
//     skipped frames
//   - [slog.LevelError]: frames abandoned mid-way, fatal loop errors
//
// For instance, a demo that wants everything on stderr:
//
//	buff.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
	hal.SetLogger(l)
}

// Logger is the engine-wide logger. Every package in the module logs
// through it rather than holding its own copy, so a later SetLogger
// reaches all of them.
func Logger() *slog.Logger {
	return current.Load()
}
