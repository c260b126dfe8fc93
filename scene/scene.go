// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import "github.com/go-gl/mathgl/mgl32"

// Renderable is one drawable object: a mesh drawn with a material at a
// world transform.
type Renderable struct {
	Name      string
	Mesh      *Mesh
	Material  Material
	Transform Transform2D
}

// Scene is the drawable state a layer exposes to the renderer.
type Scene interface {
	// Renderables returns the objects to draw, in draw order.
	Renderables() []*Renderable

	// Camera returns the camera the scene is viewed through.
	Camera() *SharedCamera
}

// GameObject is anything that owns a Renderable.
type GameObject interface {
	Renderable() *Renderable
}

// Movable is a GameObject that can be nudged along the axes by a number of
// world units.
type Movable interface {
	GameObject
	MoveUp(amount float32)
	MoveDown(amount float32)
	MoveLeft(amount float32)
	MoveRight(amount float32)
}

// Nudge is a helper for Movable implementations backed by a Transform2D.
func Nudge(t *Transform2D, dx, dy float32) {
	t.Translate(mgl32.Vec2{dx, dy})
}
