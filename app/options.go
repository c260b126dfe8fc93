// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import "log/slog"

// Option configures an Application.
type Option func(*options)

type options struct {
	renderer Renderer
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{}
}

// WithRenderer sets the renderer frames are drawn with.
func WithRenderer(r Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithLogger sets the logger for application messages.
// Default: the package logger of github.com/gogpu/buff.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
