// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render draws scenes with the wgpu HAL.
//
// A [Renderer] owns a configured surface and two caches: shader modules
// keyed by shader name and uploaded textures keyed by texture name. Each
// cached entry is built once and kept for the life of the renderer.
//
// One call to [Renderer.Render] is one frame:
//
//  1. acquire the surface texture (failure returns [ErrAcquireFrame])
//  2. begin a command encoder and a single render pass
//  3. for every renderable, in scene order: build a pipeline, a vertex
//     buffer and a uniform buffer, look up the texture, and record one draw
//  4. end the pass, submit the command buffer, present
//
// Pipelines are rebuilt for every draw. Per-draw buffers and pipelines are
// released once the queue reports the frame's submission complete.
//
// Basic usage:
//
//	dev, err := render.OpenDevice(backend, display, window)
//	...
//	r, err := render.New(dev.Device, dev.Queue, dev.Surface, 1280, 720)
//	...
//	if err := r.Render(myScene); err != nil {
//	    ...
//	}
package render
