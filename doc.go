// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package buff is a small real-time 2D rendering engine built on the
// gogpu WebGPU stack.
//
// An application owns a window, a [layer.Stack] and a [render.Renderer].
// Platform input is mapped into the closed [event.Event] set, queued, and
// drained on the application loop: every event is offered to overlays and
// then layers, newest first, until one handles it. A render request updates
// every layer and draws the scenes that scene-capable layers expose.
//
// Sub-packages:
//
//   - event: the event set, categories, and the single-consumer queue
//   - layer: the Layer interface and the layer/overlay stack
//   - scene: meshes, materials, textures, transforms, and the 2D camera
//   - render: the GPU renderer (surface lifecycle, caches, per-draw pipelines)
//   - shaders: built-in shader definitions
//   - platform: raw platform events, event mapping, and a headless window
//   - app: the application state machine and loop
//   - asset: texture decoding
//
// Logging is silent by default; see [SetLogger].
package buff
