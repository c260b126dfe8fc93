// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	cameraNear = 0
	cameraFar  = 100
)

// Camera2D is an orthographic camera.
//
// Size.Y is the number of world units visible vertically. The visible width
// follows the viewport aspect ratio, so Size.X does not affect projection.
type Camera2D struct {
	Position mgl32.Vec2
	Size     mgl32.Vec2
	Viewport [2]uint32
}

// NewCamera2D returns a camera centered on position.
func NewCamera2D(position, size mgl32.Vec2, viewportWidth, viewportHeight uint32) Camera2D {
	return Camera2D{
		Position: position,
		Size:     size,
		Viewport: [2]uint32{viewportWidth, viewportHeight},
	}
}

// UpdateViewport records a new window size in pixels.
func (c *Camera2D) UpdateViewport(width, height uint32) {
	c.Viewport = [2]uint32{width, height}
}

// AspectRatio returns viewport width over height, or 1 for a degenerate
// viewport.
func (c Camera2D) AspectRatio() float32 {
	if c.Viewport[0] == 0 || c.Viewport[1] == 0 {
		return 1
	}
	return float32(c.Viewport[0]) / float32(c.Viewport[1])
}

// ViewMatrix translates world space by the negative camera position.
func (c Camera2D) ViewMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), 0)
}

// ProjectionMatrix is the orthographic projection with left 0, bottom 0,
// top Size.Y and right Size.Y times the aspect ratio, near 0 and far 100.
func (c Camera2D) ProjectionMatrix() mgl32.Mat4 {
	top := c.Size.Y()
	right := top * c.AspectRatio()
	return orthoZO(0, right, 0, top, cameraNear, cameraFar)
}

// ViewProjection returns ProjectionMatrix * ViewMatrix.
func (c Camera2D) ViewProjection() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// orthoZO is a left-handed orthographic projection mapping depth to 0..1.
// mgl32.Ortho targets the OpenGL -1..1 depth range, which WebGPU clips.
func orthoZO(left, right, bottom, top, near, far float32) mgl32.Mat4 {
	rml, tmb, fmn := right-left, top-bottom, far-near
	return mgl32.Mat4{
		2 / rml, 0, 0, 0,
		0, 2 / tmb, 0, 0,
		0, 0, 1 / fmn, 0,
		-(right + left) / rml, -(top + bottom) / tmb, -near / fmn, 1,
	}
}

// SharedCamera is a camera owned by one layer and read by the renderer.
// Access goes through Update or Snapshot; both take an exclusive lock.
type SharedCamera struct {
	mu  sync.Mutex
	cam Camera2D
}

// NewSharedCamera wraps cam.
func NewSharedCamera(cam Camera2D) *SharedCamera {
	return &SharedCamera{cam: cam}
}

// Update runs fn with exclusive access to the camera.
func (s *SharedCamera) Update(fn func(*Camera2D)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.cam)
}

// Snapshot returns a copy of the camera.
func (s *SharedCamera) Snapshot() Camera2D {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cam
}
