// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sandbox is the sample game the demo command runs: a scene of
// textured sprites, a logging layer and a debug overlay.
package sandbox

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/buff/scene"
	"github.com/gogpu/buff/shaders"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Sprite is a textured quad that can be moved and optionally bobs up and
// down around its anchor.
type Sprite struct {
	renderable scene.Renderable
	anchor     mgl32.Vec2
	bob        *gween.Sequence
}

var _ scene.Movable = (*Sprite)(nil)

// NewSprite returns a sprite centered on position whose side is scale
// world units.
func NewSprite(name string, tex *scene.Texture, position mgl32.Vec2, scale float32) *Sprite {
	s := &Sprite{
		renderable: scene.Renderable{
			Name: name,
			Mesh: scene.QuadMesh(name+" quad", [4]float32{1, 1, 1, 1}),
			Material: scene.Material{
				Shader:  shaders.Sprite,
				Texture: tex,
			},
			Transform: scene.NewTransform2D(position, mgl32.Vec2{scale, scale}),
		},
		anchor: position,
	}
	return s
}

// Bob makes the sprite rise by amplitude and fall back over period
// seconds, forever.
func (s *Sprite) Bob(amplitude, period float32) {
	half := period / 2
	s.bob = gween.NewSequence(
		gween.New(0, amplitude, half, ease.InOutSine),
		gween.New(amplitude, 0, half, ease.InOutSine),
	)
	s.bob.SetLoop(-1)
}

// Animate advances the bobbing by dt seconds.
func (s *Sprite) Animate(dt float32) {
	var offset float32
	if s.bob != nil {
		offset, _, _ = s.bob.Update(dt)
	}
	s.renderable.Transform.Position = s.anchor.Add(mgl32.Vec2{0, offset})
}

// Anchor returns the position the sprite bobs around.
func (s *Sprite) Anchor() mgl32.Vec2 { return s.anchor }

func (s *Sprite) Renderable() *scene.Renderable { return &s.renderable }

func (s *Sprite) MoveUp(amount float32)    { s.move(0, amount) }
func (s *Sprite) MoveDown(amount float32)  { s.move(0, -amount) }
func (s *Sprite) MoveLeft(amount float32)  { s.move(-amount, 0) }
func (s *Sprite) MoveRight(amount float32) { s.move(amount, 0) }

func (s *Sprite) move(dx, dy float32) {
	s.anchor = s.anchor.Add(mgl32.Vec2{dx, dy})
	scene.Nudge(&s.renderable.Transform, dx, dy)
}
