// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"encoding/binary"
	"math"
)

// VertexSize is the byte stride of one Vertex in a GPU vertex buffer.
//
//	position   (vec3<f32>) = 12 bytes (offset  0, location 0)
//	color      (vec4<f32>) = 16 bytes (offset 12, location 1)
//	tex_coords (vec2<f32>) =  8 bytes (offset 28, location 2)
const VertexSize = 36

// Vertex is one mesh vertex. Position is in local space (-0.5..0.5),
// TexCoords in 0..1.
type Vertex struct {
	Position  [3]float32
	Color     [4]float32
	TexCoords [2]float32
}

// Mesh is a named triangle list.
type Mesh struct {
	Name     string
	Vertices []Vertex
}

// Len returns the number of vertices.
func (m *Mesh) Len() int {
	return len(m.Vertices)
}

// Bytes encodes the vertices in the little-endian layout described by
// VertexSize.
func (m *Mesh) Bytes() []byte {
	buf := make([]byte, len(m.Vertices)*VertexSize)
	for i := range m.Vertices {
		writeVertex(buf[i*VertexSize:], &m.Vertices[i])
	}
	return buf
}

func writeVertex(buf []byte, v *Vertex) {
	off := 0
	put := func(f float32) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
		off += 4
	}
	for _, f := range v.Position {
		put(f)
	}
	for _, f := range v.Color {
		put(f)
	}
	for _, f := range v.TexCoords {
		put(f)
	}
}

// QuadMesh returns a unit quad made of two triangles, centered on the
// local origin, tinted with color. Texture coordinates put (0, 0) at the
// bottom-left corner, so textures are expected bottom row first.
func QuadMesh(name string, color [4]float32) *Mesh {
	bl := Vertex{Position: [3]float32{-0.5, -0.5, 0}, Color: color, TexCoords: [2]float32{0, 0}}
	tl := Vertex{Position: [3]float32{-0.5, 0.5, 0}, Color: color, TexCoords: [2]float32{0, 1}}
	tr := Vertex{Position: [3]float32{0.5, 0.5, 0}, Color: color, TexCoords: [2]float32{1, 1}}
	br := Vertex{Position: [3]float32{0.5, -0.5, 0}, Color: color, TexCoords: [2]float32{1, 0}}
	return &Mesh{
		Name:     name,
		Vertices: []Vertex{bl, tl, tr, bl, tr, br},
	}
}
