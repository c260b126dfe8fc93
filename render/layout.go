// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/gogpu/buff/internal/shader"
	"github.com/gogpu/buff/scene"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// spriteVertexLayout describes scene.Vertex as seen by the shader:
// position at location 0, color at 1, texture coordinates at 2.
var spriteVertexLayout = gputypes.VertexBufferLayout{
	ArrayStride: scene.VertexSize,
	StepMode:    gputypes.VertexStepModeVertex,
	Attributes: []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		{Format: gputypes.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1},
		{Format: gputypes.VertexFormatFloat32x2, Offset: 28, ShaderLocation: 2},
	},
}

// createLayouts builds the bind group layouts shared by every material:
// group 0 holds the texture and its sampler, group 1 the uniforms.
func (r *Renderer) createLayouts() error {
	var err error
	r.textureLayout, err = r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: r.label("texture_bind_group_layout"),
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create texture bind group layout: %w", err)
	}

	r.uniformLayout, err = r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: r.label("uniform_bind_group_layout"),
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer: &gputypes.BufferBindingLayout{
					Type:           gputypes.BufferBindingTypeUniform,
					MinBindingSize: scene.UniformsSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create uniform bind group layout: %w", err)
	}

	r.pipelineLayout, err = r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            r.label("pipeline_layout"),
		BindGroupLayouts: []hal.BindGroupLayout{r.textureLayout, r.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	return nil
}

func (r *Renderer) destroyLayouts() {
	if r.pipelineLayout != nil {
		r.device.DestroyPipelineLayout(r.pipelineLayout)
		r.pipelineLayout = nil
	}
	if r.uniformLayout != nil {
		r.device.DestroyBindGroupLayout(r.uniformLayout)
		r.uniformLayout = nil
	}
	if r.textureLayout != nil {
		r.device.DestroyBindGroupLayout(r.textureLayout)
		r.textureLayout = nil
	}
}

// createPipeline builds a render pipeline for one draw from the entry
// points found in module. Pipelines are not cached; the frame that created
// it destroys it once the GPU is done.
func (r *Renderer) createPipeline(name string, module *shader.Module) (hal.RenderPipeline, error) {
	blend := gputypes.BlendStateAlpha()
	pipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  r.label("pipeline_" + name),
		Layout: r.pipelineLayout,
		Vertex: hal.VertexState{
			Module:     module.Handle,
			EntryPoint: module.Vertex,
			Buffers:    []gputypes.VertexBufferLayout{spriteVertexLayout},
		},
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCCW,
			CullMode:  gputypes.CullModeNone,
		},
		Multisample: gputypes.DefaultMultisampleState(),
		Fragment: &hal.FragmentState{
			Module:     module.Handle,
			EntryPoint: module.Fragment,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    r.cfg.format,
					Blend:     &blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create pipeline %q: %w", name, err)
	}
	r.stats.PipelinesBuilt++
	return pipeline, nil
}
