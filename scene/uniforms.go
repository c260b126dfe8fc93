// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformsSize is the byte size of Uniforms on the GPU: three column-major
// mat4x4<f32>.
const UniformsSize = 3 * 16 * 4

// Uniforms is the per-draw payload bound at group 1, binding 0.
type Uniforms struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// NewUniforms computes the matrices for one renderable seen through cam.
func NewUniforms(t Transform2D, cam Camera2D) Uniforms {
	return Uniforms{
		Model:      t.ModelMatrix(),
		View:       cam.ViewMatrix(),
		Projection: cam.ProjectionMatrix(),
	}
}

// Bytes encodes the uniforms little-endian, model first.
func (u Uniforms) Bytes() []byte {
	buf := make([]byte, UniformsSize)
	off := 0
	for _, m := range [3]mgl32.Mat4{u.Model, u.View, u.Projection} {
		for _, f := range m {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
			off += 4
		}
	}
	return buf
}
