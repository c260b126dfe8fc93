// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// frame owns every GPU object created for one Render call. It is released
// once the queue reports its submission complete.
type frame struct {
	index      uint64
	view       hal.TextureView
	encoder    hal.CommandEncoder
	cmd        hal.CommandBuffer
	pipelines  []hal.RenderPipeline
	buffers    []hal.Buffer
	bindGroups []hal.BindGroup
}

func (f *frame) destroy(device hal.Device) {
	for _, bg := range f.bindGroups {
		device.DestroyBindGroup(bg)
	}
	for _, buf := range f.buffers {
		device.DestroyBuffer(buf)
	}
	for _, p := range f.pipelines {
		device.DestroyRenderPipeline(p)
	}
	if f.cmd != nil {
		device.FreeCommandBuffer(f.cmd)
	}
	if f.encoder != nil {
		f.encoder.Destroy()
	}
	if f.view != nil {
		device.DestroyTextureView(f.view)
	}
	*f = frame{}
}

// createAndUploadBuffer creates a buffer of len(data) bytes and writes data
// into it through the queue. The buffer is owned by f.
func (r *Renderer) createAndUploadBuffer(f *frame, label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: r.label(label),
		Size:  uint64(len(data)),
		Usage: usage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	f.buffers = append(f.buffers, buf)
	if err := r.queue.WriteBuffer(buf, 0, data); err != nil {
		return nil, fmt.Errorf("upload %s: %w", label, err)
	}
	return buf, nil
}

// reclaim releases frames whose submissions the GPU has finished.
func (r *Renderer) reclaim() {
	if len(r.inFlight) == 0 {
		return
	}
	done := r.queue.PollCompleted()
	kept := r.inFlight[:0]
	for _, f := range r.inFlight {
		if f.index <= done {
			f.destroy(r.device)
			continue
		}
		kept = append(kept, f)
	}
	clear(r.inFlight[len(kept):])
	r.inFlight = kept
}
