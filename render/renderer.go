// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/gogpu/buff"
	"github.com/gogpu/buff/internal/cache"
	"github.com/gogpu/buff/internal/shader"
	"github.com/gogpu/buff/scene"
	"github.com/gogpu/buff/shaders"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Stats reports renderer activity since creation.
type Stats struct {
	Frames         uint64
	Draws          uint64
	PipelinesBuilt uint64
	TextureUploads uint64
	ShaderCompiles uint64
	TextureHits    uint64
	TextureMisses  uint64
}

// Renderer draws scenes onto a surface. It is not safe for concurrent use;
// all calls belong to the loop that owns the window.
type Renderer struct {
	device  hal.Device
	queue   hal.Queue
	surface hal.Surface
	cfg     config

	width      uint32
	height     uint32
	configured bool
	closed     bool

	textureLayout  hal.BindGroupLayout
	uniformLayout  hal.BindGroupLayout
	pipelineLayout hal.PipelineLayout

	shaders  *cache.Cache[string, *shader.Module]
	textures *cache.Cache[string, *gpuTexture]

	inFlight []*frame
	stats    Stats
}

// New creates a renderer for surface and configures it to width x height.
// A zero size leaves the surface unconfigured until the first non-zero
// Resize.
func New(device hal.Device, queue hal.Queue, surface hal.Surface, width, height uint32, opts ...Option) (*Renderer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Renderer{
		device:   device,
		queue:    queue,
		surface:  surface,
		cfg:      cfg,
		shaders:  cache.New[string, *shader.Module](),
		textures: cache.New[string, *gpuTexture](),
	}
	if err := r.createLayouts(); err != nil {
		r.destroyLayouts()
		return nil, err
	}
	if err := r.Resize(width, height); err != nil {
		r.destroyLayouts()
		return nil, err
	}
	return r, nil
}

// NewForDevice is New with the objects held by d.
func NewForDevice(d *Device, width, height uint32, opts ...Option) (*Renderer, error) {
	return New(d.Device, d.Queue, d.Surface, width, height, opts...)
}

func (r *Renderer) label(name string) string {
	return r.cfg.label + "_" + name
}

// Size returns the size last passed to Resize.
func (r *Renderer) Size() (width, height uint32) {
	return r.width, r.height
}

// Resize reconfigures the surface to width x height. A zero dimension is
// recorded and the surface left alone; Render draws nothing until a
// non-zero size arrives.
func (r *Renderer) Resize(width, height uint32) error {
	if r.closed {
		return ErrClosed
	}
	r.width, r.height = width, height
	if width == 0 || height == 0 {
		r.configured = false
		buff.Logger().Debug("render: zero-size surface, frames skipped", "width", width, "height", height)
		return nil
	}

	err := r.surface.Configure(r.device, &hal.SurfaceConfiguration{
		Width:       width,
		Height:      height,
		Format:      r.cfg.format,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: r.cfg.presentMode,
		AlphaMode:   r.cfg.alphaMode,
	})
	if err != nil {
		r.configured = false
		return fmt.Errorf("configure surface %dx%d: %w", width, height, err)
	}
	r.configured = true
	buff.Logger().Debug("render: surface configured", "width", width, "height", height)
	return nil
}

// Render draws every renderable of scenes, in order, into one frame:
// acquire, encode a single clearing pass, submit, present. A failed
// acquisition returns an error wrapping ErrAcquireFrame and draws nothing.
func (r *Renderer) Render(scenes ...scene.Scene) error {
	if r.closed {
		return ErrClosed
	}
	r.reclaim()
	if !r.configured {
		return nil
	}
	for _, s := range scenes {
		if s == nil || s.Camera() == nil {
			return ErrNilScene
		}
	}

	acquired, err := r.surface.AcquireTexture(nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAcquireFrame, err)
	}
	if acquired.Suboptimal {
		buff.Logger().Warn("render: suboptimal surface texture", "width", r.width, "height", r.height)
	}

	f := &frame{}
	fail := func(err error) error {
		r.surface.DiscardTexture(acquired.Texture)
		f.destroy(r.device)
		buff.Logger().Error("render: frame failed", "err", err)
		return err
	}

	f.view, err = r.device.CreateTextureView(acquired.Texture, &hal.TextureViewDescriptor{
		Label:           r.label("surface_view"),
		Format:          r.cfg.format,
		Dimension:       gputypes.TextureViewDimension2D,
		Aspect:          gputypes.TextureAspectAll,
		MipLevelCount:   1,
		ArrayLayerCount: 1,
	})
	if err != nil {
		return fail(fmt.Errorf("create surface view: %w", err))
	}

	f.encoder, err = r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: r.label("frame_encoder")})
	if err != nil {
		return fail(fmt.Errorf("create command encoder: %w", err))
	}
	if err := f.encoder.BeginEncoding(r.label("frame")); err != nil {
		return fail(fmt.Errorf("begin encoding: %w", err))
	}

	pass := f.encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: r.label("render_pass"),
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:       f.view,
				LoadOp:     gputypes.LoadOpClear,
				StoreOp:    gputypes.StoreOpStore,
				ClearValue: r.cfg.clearColor,
			},
		},
	})

	draws := 0
	for _, s := range scenes {
		cam := s.Camera().Snapshot()
		for _, rd := range s.Renderables() {
			drawn, err := r.draw(pass, f, rd, cam)
			if err != nil {
				pass.End()
				f.encoder.DiscardEncoding()
				return fail(err)
			}
			if drawn {
				draws++
			}
		}
	}
	pass.End()

	f.cmd, err = f.encoder.EndEncoding()
	if err != nil {
		return fail(fmt.Errorf("end encoding: %w", err))
	}

	f.index, err = r.queue.Submit([]hal.CommandBuffer{f.cmd})
	if err != nil {
		return fail(fmt.Errorf("submit: %w", err))
	}
	r.inFlight = append(r.inFlight, f)

	if err := r.queue.Present(r.surface, acquired.Texture, nil); err != nil {
		buff.Logger().Error("render: present failed", "err", err)
		return fmt.Errorf("present: %w", err)
	}
	r.stats.Frames++
	buff.Logger().Debug("render: frame presented", "frame", r.stats.Frames, "draws", draws)
	return nil
}

// draw records one renderable into pass. Renderables without vertices are
// skipped and report false.
func (r *Renderer) draw(pass hal.RenderPassEncoder, f *frame, rd *scene.Renderable, cam scene.Camera2D) (bool, error) {
	if rd == nil || rd.Mesh == nil || rd.Mesh.Len() == 0 {
		return false, nil
	}

	def := rd.Material.Shader
	if def == nil {
		def = shaders.Sprite
	}
	module, err := r.shaderModule(def)
	if err != nil {
		return false, err
	}

	pipeline, err := r.createPipeline(def.Name, module)
	if err != nil {
		return false, err
	}
	f.pipelines = append(f.pipelines, pipeline)

	vertices, err := r.createAndUploadBuffer(f, "vertex_buffer_"+rd.Name, rd.Mesh.Bytes(), gputypes.BufferUsageVertex)
	if err != nil {
		return false, err
	}

	tex, err := r.resolveTexture(rd.Material.Texture)
	if err != nil {
		return false, err
	}

	uniforms := scene.NewUniforms(rd.Transform, cam)
	ubuf, err := r.createAndUploadBuffer(f, "uniform_buffer_"+rd.Name, uniforms.Bytes(), gputypes.BufferUsageUniform)
	if err != nil {
		return false, err
	}
	ubg, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  r.label("uniform_bind_group_" + rd.Name),
		Layout: r.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: ubuf.NativeHandle(), Offset: 0, Size: scene.UniformsSize}},
		},
	})
	if err != nil {
		return false, fmt.Errorf("create uniform bind group %q: %w", rd.Name, err)
	}
	f.bindGroups = append(f.bindGroups, ubg)

	pass.SetPipeline(pipeline)
	pass.SetBindGroup(0, tex.bindGroup, nil)
	pass.SetBindGroup(1, ubg, nil)
	pass.SetVertexBuffer(0, vertices, 0)
	pass.Draw(uint32(rd.Mesh.Len()), 1, 0, 0)
	r.stats.Draws++
	return true, nil
}

// shaderModule returns the module compiled for def, compiling it once per
// shader name.
func (r *Renderer) shaderModule(def *scene.ShaderDefinition) (*shader.Module, error) {
	module, _, err := r.shaders.GetOrCreate(def.Name, func() (*shader.Module, error) {
		m, err := shader.CreateModule(r.device, def, r.cfg.spirv)
		if err != nil {
			return nil, err
		}
		r.stats.ShaderCompiles++
		buff.Logger().Debug("render: shader compiled", "shader", def.Name, "spirv", r.cfg.spirv,
			"vertex", m.Vertex, "fragment", m.Fragment)
		return m, nil
	})
	return module, err
}

// Stats returns a snapshot of the renderer counters.
func (r *Renderer) Stats() Stats {
	s := r.stats
	ts := r.textures.Stats()
	s.TextureHits = ts.Hits
	s.TextureMisses = ts.Misses
	return s
}

// Close waits for the GPU, then releases in-flight frames, cached textures
// and shader modules, and the layouts. The surface is unconfigured but not
// destroyed. Close is idempotent.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	if err := r.device.WaitIdle(); err != nil {
		buff.Logger().Warn("render: wait idle failed", "err", err)
	}
	for _, f := range r.inFlight {
		f.destroy(r.device)
	}
	r.inFlight = nil
	r.textures.Clear(func(t *gpuTexture) { t.destroy(r.device) })
	r.shaders.Clear(func(m *shader.Module) { r.device.DestroyShaderModule(m.Handle) })
	r.destroyLayouts()
	if r.configured {
		r.surface.Unconfigure(r.device)
		r.configured = false
	}
}
