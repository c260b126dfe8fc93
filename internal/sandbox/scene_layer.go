// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sandbox

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/buff"
	"github.com/gogpu/buff/event"
	"github.com/gogpu/buff/layer"
	"github.com/gogpu/buff/scene"
)

// Step is the simulated time of one update tick, in seconds.
const Step float32 = 1.0 / 60

// PlayerSpeed is how far one key press moves the player, in world units.
const PlayerSpeed float32 = 0.25

// SceneLayer is the playable scene: a player sprite moved with the arrow
// keys or WASD, and bobbing decorations. Its camera follows window resizes.
type SceneLayer struct {
	layer.Base

	camera  *scene.SharedCamera
	player  *Sprite
	sprites []*Sprite
	items   []*scene.Renderable
}

var _ scene.Scene = (*SceneLayer)(nil)

// NewSceneLayer builds the scene for a viewport of width x height pixels.
// The camera shows ten world units vertically.
func NewSceneLayer(player, prop *scene.Texture, width, height uint32) *SceneLayer {
	l := &SceneLayer{
		camera: scene.NewSharedCamera(scene.NewCamera2D(mgl32.Vec2{0, 0}, mgl32.Vec2{10, 10}, width, height)),
		player: NewSprite("Player", player, mgl32.Vec2{4, 4}, 2),
	}
	for i, x := range []float32{1, 8, 12} {
		s := NewSprite("Prop", prop, mgl32.Vec2{x, 1}, 1)
		s.Bob(0.5, 1+float32(i)*0.5)
		l.sprites = append(l.sprites, s)
	}
	// The player is drawn last, on top of the props.
	l.sprites = append(l.sprites, l.player)
	for _, s := range l.sprites {
		l.items = append(l.items, s.Renderable())
	}
	return l
}

func (l *SceneLayer) Name() string { return "Scene" }

// Player returns the sprite driven by the keyboard.
func (l *SceneLayer) Player() *Sprite { return l.player }

func (l *SceneLayer) Renderables() []*scene.Renderable { return l.items }
func (l *SceneLayer) Camera() *scene.SharedCamera      { return l.camera }

func (l *SceneLayer) AsScene() (scene.Scene, bool) { return l, true }

// Update advances every animation by one Step.
func (l *SceneLayer) Update() {
	for _, s := range l.sprites {
		s.Animate(Step)
	}
}

// HandleEvent moves the player on arrow and WASD presses, repeats
// included, and tracks the viewport. Resizes are left for other layers.
func (l *SceneLayer) HandleEvent(e event.Event) bool {
	switch ev := e.(type) {
	case event.WindowResized:
		l.camera.Update(func(c *scene.Camera2D) {
			c.UpdateViewport(ev.Width, ev.Height)
		})
		return false
	case event.KeyPressed:
		return l.movePlayer(ev.Key)
	}
	return false
}

func (l *SceneLayer) movePlayer(k event.Key) bool {
	switch k {
	case event.KeyUp, event.KeyW:
		l.player.MoveUp(PlayerSpeed)
	case event.KeyDown, event.KeyS:
		l.player.MoveDown(PlayerSpeed)
	case event.KeyLeft, event.KeyA:
		l.player.MoveLeft(PlayerSpeed)
	case event.KeyRight, event.KeyD:
		l.player.MoveRight(PlayerSpeed)
	default:
		return false
	}
	buff.Logger().Debug("sandbox: player moved", "key", event.KeyName(k), "at", l.player.Anchor())
	return true
}
