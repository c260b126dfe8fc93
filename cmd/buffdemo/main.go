// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command buffdemo runs the sandbox scene headlessly for a fixed number of
// frames and prints what the engine did.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/buff"
	"github.com/gogpu/buff/app"
	"github.com/gogpu/buff/asset"
	"github.com/gogpu/buff/event"
	"github.com/gogpu/buff/internal/sandbox"
	"github.com/gogpu/buff/platform"
	"github.com/gogpu/buff/render"
	"github.com/gogpu/buff/scene"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	defaults := platform.DefaultWindowProps()
	var (
		width    = flag.Int("width", defaults.Width, "window width")
		height   = flag.Int("height", defaults.Height, "window height")
		title    = flag.String("title", defaults.Title, "window title")
		frames   = flag.Int("frames", 120, "frames to run before closing")
		texture  = flag.String("texture", "", "image file for the player sprite")
		backend  = flag.String("backend", "noop", "GPU backend: noop, vulkan, metal, dx12, gl or auto")
		logLevel = flag.String("log-level", "info", "log level: debug, info, warn or error")
	)
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("buffdemo: %v", err)
	}
	buff.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*title, *width, *height, *frames, *texture, *backend); err != nil {
		log.Fatalf("buffdemo: %v", err)
	}
}

func run(title string, width, height, frames int, texturePath, backendName string) error {
	b, err := render.Backend(backendName)
	if err != nil {
		return err
	}
	dev, err := render.OpenDevice(b, 0, 0)
	if err != nil {
		return err
	}
	defer dev.Close()

	renderer, err := render.NewForDevice(dev, uint32(width), uint32(height))
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Close()

	player, prop, err := loadTextures(texturePath)
	if err != nil {
		return err
	}

	window := platform.NewHeadless(platform.WindowProps{
		Title:  title,
		Width:  width,
		Height: height,
		VSync:  true,
	}, script(frames)...)

	a, err := app.New(window, app.WithRenderer(renderer))
	if err != nil {
		return err
	}
	game := sandbox.NewSceneLayer(player, prop, uint32(width), uint32(height))
	sample := &sandbox.SampleLayer{}
	overlay := sandbox.NewDebugOverlay()
	a.PushLayer(game)
	a.PushLayer(sample)
	a.PushOverlay(overlay)

	if err := a.Run(); err != nil {
		return err
	}

	st := a.Stats()
	rs := renderer.Stats()
	p := message.NewPrinter(language.English)
	p.Printf("%s on %s\n", title, dev.GPUInfo())
	p.Printf("frames: %d drawn, %d skipped; events: %d (%d dropped)\n", st.Frames, st.Skipped, st.Events, st.Dropped)
	p.Printf("gpu: %d draws, %d pipelines, %d texture uploads, %d shader compiles\n",
		rs.Draws, rs.PipelinesBuilt, rs.TextureUploads, rs.ShaderCompiles)
	p.Printf("player at %v; %s\n", game.Player().Anchor(), overlay.Summary())
	for _, t := range renderer.Textures() {
		p.Printf("texture %q: %dx%d\n", t.Name, t.Width, t.Height)
	}
	return nil
}

func loadTextures(path string) (player, prop *scene.Texture, err error) {
	prop, err = asset.Checkerboard("checker", 64, 64, 8)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return prop, prop, nil
	}
	player, err = asset.LoadTexture(path, "", asset.WithMaxSize(1024))
	if err != nil {
		return nil, nil, err
	}
	return player, prop, nil
}

// script walks the player around while frames are drawn, toggles the debug
// overlay once and halves the window midway.
func script(frames int) []platform.Step {
	steps := platform.Frames(frames / 2)
	steps = append(steps,
		platform.TapKey(event.KeyRight),
		platform.TapKey(event.KeyUp),
		platform.TapKey(event.KeyF3),
		platform.MoveMouse(40, 30),
		platform.Resize(640, 360),
	)
	return append(steps, platform.Frames(frames-frames/2)...)
}
