// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/buff/scene"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// journal records the order of interesting HAL calls.
type journal []string

func (j *journal) add(s string) { *j = append(*j, s) }

// indexOf returns the position of the first s, or -1.
func (j journal) indexOf(s string) int {
	for i, v := range j {
		if v == s {
			return i
		}
	}
	return -1
}

type countingDevice struct {
	hal.Device
	log *journal

	textures          int
	pipelines         int
	destroyedPipes    int
	shaderModules     int
	lastShaderDesc    hal.ShaderModuleDescriptor
	buffers           int
	destroyedBuffers  int
	destroyedTextures int
	entryPoints       []string
}

func (d *countingDevice) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	d.textures++
	return d.Device.CreateTexture(desc)
}

func (d *countingDevice) DestroyTexture(t hal.Texture) {
	d.destroyedTextures++
	d.Device.DestroyTexture(t)
}

func (d *countingDevice) CreateRenderPipeline(desc *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error) {
	d.pipelines++
	d.entryPoints = append(d.entryPoints, desc.Vertex.EntryPoint)
	if desc.Fragment != nil {
		d.entryPoints = append(d.entryPoints, desc.Fragment.EntryPoint)
	}
	return d.Device.CreateRenderPipeline(desc)
}

func (d *countingDevice) DestroyRenderPipeline(p hal.RenderPipeline) {
	d.destroyedPipes++
	d.Device.DestroyRenderPipeline(p)
}

func (d *countingDevice) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	d.shaderModules++
	d.lastShaderDesc = *desc
	return d.Device.CreateShaderModule(desc)
}

func (d *countingDevice) CreateBuffer(desc *hal.BufferDescriptor) (hal.Buffer, error) {
	d.buffers++
	return d.Device.CreateBuffer(desc)
}

func (d *countingDevice) DestroyBuffer(b hal.Buffer) {
	d.destroyedBuffers++
	d.Device.DestroyBuffer(b)
}

func (d *countingDevice) CreateCommandEncoder(desc *hal.CommandEncoderDescriptor) (hal.CommandEncoder, error) {
	d.log.add("encoder")
	return d.Device.CreateCommandEncoder(desc)
}

type countingQueue struct {
	hal.Queue
	log *journal

	textureWrites int
	bufferWrites  int
	submits       int
	presents      int
}

func (q *countingQueue) WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) error {
	q.textureWrites++
	return q.Queue.WriteTexture(dst, data, layout, size)
}

func (q *countingQueue) WriteBuffer(buf hal.Buffer, offset uint64, data []byte) error {
	q.bufferWrites++
	return q.Queue.WriteBuffer(buf, offset, data)
}

func (q *countingQueue) Submit(cmds []hal.CommandBuffer) (uint64, error) {
	q.submits++
	q.log.add("submit")
	return q.Queue.Submit(cmds)
}

func (q *countingQueue) Present(s hal.Surface, t hal.SurfaceTexture, damage []image.Rectangle) error {
	q.presents++
	q.log.add("present")
	return q.Queue.Present(s, t, damage)
}

type countingSurface struct {
	hal.Surface
	log *journal

	configs    []hal.SurfaceConfiguration
	acquireErr error
	acquires   int
	discards   int
}

func (s *countingSurface) Configure(device hal.Device, cfg *hal.SurfaceConfiguration) error {
	s.configs = append(s.configs, *cfg)
	return s.Surface.Configure(device, cfg)
}

func (s *countingSurface) AcquireTexture(fence hal.Fence) (*hal.AcquiredSurfaceTexture, error) {
	s.acquires++
	s.log.add("acquire")
	if s.acquireErr != nil {
		return nil, s.acquireErr
	}
	return s.Surface.AcquireTexture(fence)
}

func (s *countingSurface) DiscardTexture(t hal.SurfaceTexture) {
	s.discards++
	s.Surface.DiscardTexture(t)
}

type testGPU struct {
	device  *countingDevice
	queue   *countingQueue
	surface *countingSurface
	log     *journal
}

// newNoopGPU opens the noop backend and wraps its device, queue and
// surface in counting doubles.
func newNoopGPU(t *testing.T) *testGPU {
	t.Helper()

	instance, err := noop.API{}.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	surface, err := instance.CreateSurface(0, 0)
	if err != nil {
		t.Fatalf("CreateSurface: %v", err)
	}
	adapters := instance.EnumerateAdapters(surface)
	if len(adapters) == 0 {
		t.Fatal("no noop adapters")
	}
	open, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	log := &journal{}
	return &testGPU{
		device:  &countingDevice{Device: open.Device, log: log},
		queue:   &countingQueue{Queue: open.Queue, log: log},
		surface: &countingSurface{Surface: surface, log: log},
		log:     log,
	}
}

func (g *testGPU) renderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(g.device, g.queue, g.surface, 800, 600, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(r.Close)
	return r
}

type testScene struct {
	renderables []*scene.Renderable
	camera      *scene.SharedCamera
}

func (s *testScene) Renderables() []*scene.Renderable { return s.renderables }
func (s *testScene) Camera() *scene.SharedCamera      { return s.camera }

func newTestScene(renderables ...*scene.Renderable) *testScene {
	cam := scene.NewCamera2D(mgl32.Vec2{0, 0}, mgl32.Vec2{10, 10}, 800, 600)
	return &testScene{renderables: renderables, camera: scene.NewSharedCamera(cam)}
}

func quad(name string, tex *scene.Texture) *scene.Renderable {
	return &scene.Renderable{
		Name:      name,
		Mesh:      scene.QuadMesh(name, [4]float32{1, 1, 1, 1}),
		Material:  scene.Material{Texture: tex},
		Transform: scene.NewTransform2D(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}),
	}
}

func redTexture(name string) *scene.Texture {
	return scene.NewTexture(name, 2, 2, []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		255, 0, 0, 255, 255, 0, 0, 255,
	})
}
