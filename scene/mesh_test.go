// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func f32At(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

func TestMeshBytesLayout(t *testing.T) {
	m := &Mesh{Name: "tri", Vertices: []Vertex{
		{Position: [3]float32{1, 2, 3}, Color: [4]float32{4, 5, 6, 7}, TexCoords: [2]float32{8, 9}},
		{Position: [3]float32{-1, -2, -3}},
	}}
	buf := m.Bytes()
	if len(buf) != 2*VertexSize {
		t.Fatalf("len = %d, want %d", len(buf), 2*VertexSize)
	}
	offsets := map[string]int{"position": 0, "color": 12, "tex_coords": 28}
	wants := map[string]float32{"position": 1, "color": 4, "tex_coords": 8}
	for name, off := range offsets {
		if got := f32At(buf, off); got != wants[name] {
			t.Errorf("%s at %d = %v, want %v", name, off, got, wants[name])
		}
	}
	if got := f32At(buf, VertexSize+8); got != -3 {
		t.Errorf("second vertex z = %v, want -3", got)
	}
}

func TestQuadMesh(t *testing.T) {
	m := QuadMesh("sprite", [4]float32{1, 1, 1, 1})
	if m.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", m.Len())
	}
	for i, v := range m.Vertices {
		for _, p := range v.Position[:2] {
			if p != -0.5 && p != 0.5 {
				t.Errorf("vertex %d position %v outside local square", i, v.Position)
			}
		}
		// (0,0) uv sits at the bottom-left corner.
		wantU := v.Position[0] + 0.5
		wantV := v.Position[1] + 0.5
		if v.TexCoords != [2]float32{wantU, wantV} {
			t.Errorf("vertex %d uv = %v, want (%v,%v)", i, v.TexCoords, wantU, wantV)
		}
	}
}

func TestTextureValid(t *testing.T) {
	tests := []struct {
		name string
		tex  *Texture
		want bool
	}{
		{"ok", NewTexture("a", 2, 2, make([]byte, 16)), true},
		{"short", NewTexture("a", 2, 2, make([]byte, 15)), false},
		{"zero", NewTexture("a", 0, 2, nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tex.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUniformsBytes(t *testing.T) {
	tr := NewTransform2D(mgl32.Vec2{3, 4}, mgl32.Vec2{1, 1})
	cam := NewCamera2D(mgl32.Vec2{1, 1}, mgl32.Vec2{10, 10}, 10, 10)
	u := NewUniforms(tr, cam)

	buf := u.Bytes()
	if len(buf) != UniformsSize {
		t.Fatalf("len = %d, want %d", len(buf), UniformsSize)
	}
	// Column-major: translation lives in elements 12 and 13.
	if got := f32At(buf, 12*4); got != 3.5 {
		t.Errorf("model translation x = %v, want 3.5", got)
	}
	if got := f32At(buf, 64+12*4); got != -1 {
		t.Errorf("view translation x = %v, want -1", got)
	}
	if got := f32At(buf, 128); got != 0.2 {
		t.Errorf("projection[0] = %v, want 0.2", got)
	}
}
