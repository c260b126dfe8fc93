// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrAcquireFrame wraps failures to acquire the next surface texture.
	// The frame is not drawn; the next Render call tries again.
	ErrAcquireFrame = errors.New("render: failed to acquire frame")

	// ErrNoAdapter is returned when no adapter can drive the surface.
	ErrNoAdapter = errors.New("render: no compatible adapter")

	// ErrUnknownBackend is returned for an unrecognized backend name.
	ErrUnknownBackend = errors.New("render: unknown backend")

	// ErrClosed is returned by a Renderer after Close.
	ErrClosed = errors.New("render: renderer closed")

	// ErrNilScene is returned when Render receives a nil scene or a scene
	// without a camera.
	ErrNilScene = errors.New("render: scene has no camera")

	// ErrInvalidTexture is returned for a texture whose pixel buffer does
	// not match its size.
	ErrInvalidTexture = errors.New("render: invalid texture")
)
