// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform2D places a mesh in the world.
type Transform2D struct {
	Position mgl32.Vec2
	Scale    mgl32.Vec2
}

// NewTransform2D returns a transform at position with the given scale.
func NewTransform2D(position, scale mgl32.Vec2) Transform2D {
	return Transform2D{Position: position, Scale: scale}
}

// ModelMatrix maps local space into world space: the local -0.5..0.5 square
// is first moved to 0..1, then scaled, then translated to Position.
func (t Transform2D) ModelMatrix() mgl32.Mat4 {
	recenter := mgl32.Translate3D(0.5, 0.5, 0)
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), 1)
	position := mgl32.Translate3D(t.Position.X(), t.Position.Y(), 0)
	return position.Mul4(scale).Mul4(recenter)
}

// Apply maps a local point into world space.
func (t Transform2D) Apply(local mgl32.Vec2) mgl32.Vec2 {
	return t.ModelMatrix().Mul4x1(mgl32.Vec4{local.X(), local.Y(), 0, 1}).Vec2()
}

// Translate moves the transform by delta.
func (t *Transform2D) Translate(delta mgl32.Vec2) {
	t.Position = t.Position.Add(delta)
}
