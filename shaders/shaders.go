// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shaders holds the engine's built-in shader definitions.
//
// Every built-in shader follows the renderer's binding contract:
// group 0 binds a texture (binding 0) and sampler (binding 1) for the
// fragment stage, group 1 binds the per-draw scene.Uniforms (binding 0)
// for the vertex stage. Entry points are vs_main and fs_main, and vertex
// attributes follow scene.Vertex (locations 0, 1, 2).
package shaders

import (
	_ "embed"

	"github.com/gogpu/buff/scene"
)

//go:embed sprite.wgsl
var spriteSource string

// Sprite draws a textured quad tinted by its vertex colors.
var Sprite = &scene.ShaderDefinition{
	Name:   "Sprite Shader",
	Source: spriteSource,
}

// EntryPoints used by every built-in shader.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)
