// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

// Texture is an RGBA8 image ready for upload, bottom row first.
//
// Name is the cache key: the renderer uploads the first texture it sees
// under a name and reuses that upload for every later texture with the
// same name, whatever its pixels.
type Texture struct {
	Name   string
	Width  uint32
	Height uint32
	Pixels []byte
}

// NewTexture returns a texture of the given size backed by pix.
// pix must hold width*height*4 bytes.
func NewTexture(name string, width, height uint32, pix []byte) *Texture {
	return &Texture{Name: name, Width: width, Height: height, Pixels: pix}
}

// Valid reports whether the pixel buffer matches the declared size.
func (t *Texture) Valid() bool {
	return t.Width > 0 && t.Height > 0 && len(t.Pixels) == int(t.Width)*int(t.Height)*4
}

// ShaderDefinition is WGSL source identified by name. Shaders compare by
// name; the renderer compiles each name once.
type ShaderDefinition struct {
	Name   string
	Source string
}

// Material pairs a shader with an optional texture.
type Material struct {
	Shader  *ShaderDefinition
	Texture *Texture
}
