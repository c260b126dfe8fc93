// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/gputypes"

// Option configures a Renderer.
type Option func(*config)

type config struct {
	label       string
	format      gputypes.TextureFormat
	presentMode gputypes.PresentMode
	alphaMode   gputypes.CompositeAlphaMode
	clearColor  gputypes.Color
	spirv       bool
}

func defaultConfig() config {
	return config{
		label:       "buff",
		format:      gputypes.TextureFormatBGRA8UnormSrgb,
		presentMode: gputypes.PresentModeFifo,
		alphaMode:   gputypes.CompositeAlphaModeOpaque,
		clearColor:  gputypes.Color{R: 0.1, G: 0.2, B: 0.3, A: 1},
	}
}

// WithSurfaceFormat sets the swap surface format.
// Default: BGRA8UnormSrgb.
func WithSurfaceFormat(f gputypes.TextureFormat) Option {
	return func(c *config) {
		c.format = f
	}
}

// WithPresentMode sets the presentation mode.
// Default: Fifo (vsync).
func WithPresentMode(m gputypes.PresentMode) Option {
	return func(c *config) {
		c.presentMode = m
	}
}

// WithClearColor sets the color the frame is cleared to.
func WithClearColor(col gputypes.Color) Option {
	return func(c *config) {
		c.clearColor = col
	}
}

// WithLabel prefixes the debug labels of GPU objects.
func WithLabel(label string) Option {
	return func(c *config) {
		c.label = label
	}
}

// WithSPIRV makes the renderer hand shaders to the backend as SPIR-V
// compiled by naga instead of WGSL source.
func WithSPIRV(enabled bool) Option {
	return func(c *config) {
		c.spirv = enabled
	}
}
