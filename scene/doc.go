// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene describes what the renderer draws: meshes, materials,
// textures, world transforms, and the 2D camera.
//
// Everything here is GPU-agnostic. A [Scene] is a capability exposed by a
// layer; it hands the renderer an ordered list of [Renderable] values and a
// [SharedCamera]. The renderer only reads them for the duration of a frame.
//
// # Coordinate pipeline
//
// Mesh vertices live in local space (-0.5..0.5). [Transform2D.ModelMatrix]
// maps them into world units, [Camera2D.ViewMatrix] moves the camera to the
// origin, and [Camera2D.ProjectionMatrix] maps view space into WebGPU clip
// space (x, y in -1..1, depth in 0..1).
package scene
