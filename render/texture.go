// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/gogpu/buff/scene"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// whiteTextureName is the cache key of the texture bound for materials
// without one.
const whiteTextureName = "buff/white"

var whiteTexture = scene.NewTexture(whiteTextureName, 1, 1, []byte{0xff, 0xff, 0xff, 0xff})

// TextureInfo describes a texture resident on the GPU.
type TextureInfo struct {
	Name   string
	Width  uint32
	Height uint32
}

// Texture reports the uploaded texture cached under name.
func (r *Renderer) Texture(name string) (TextureInfo, bool) {
	t, ok := r.textures.Get(name)
	if !ok {
		return TextureInfo{}, false
	}
	return TextureInfo{Name: name, Width: t.width, Height: t.height}, true
}

// Textures lists the uploaded textures in upload order.
func (r *Renderer) Textures() []TextureInfo {
	var infos []TextureInfo
	r.textures.Range(func(name string, t *gpuTexture) bool {
		infos = append(infos, TextureInfo{Name: name, Width: t.width, Height: t.height})
		return true
	})
	return infos
}

// gpuTexture is an uploaded texture together with everything needed to
// bind it at group 0.
type gpuTexture struct {
	texture   hal.Texture
	view      hal.TextureView
	sampler   hal.Sampler
	bindGroup hal.BindGroup
	width     uint32
	height    uint32
}

func (t *gpuTexture) destroy(device hal.Device) {
	if t.bindGroup != nil {
		device.DestroyBindGroup(t.bindGroup)
	}
	if t.sampler != nil {
		device.DestroySampler(t.sampler)
	}
	if t.view != nil {
		device.DestroyTextureView(t.view)
	}
	if t.texture != nil {
		device.DestroyTexture(t.texture)
	}
}

// uploadTexture creates the GPU texture, writes tex.Pixels into it and
// builds its sampler and bind group.
func (r *Renderer) uploadTexture(tex *scene.Texture) (*gpuTexture, error) {
	if !tex.Valid() {
		return nil, fmt.Errorf("%w: %q is %dx%d with %d bytes", ErrInvalidTexture, tex.Name, tex.Width, tex.Height, len(tex.Pixels))
	}

	gt := &gpuTexture{width: tex.Width, height: tex.Height}
	ok := false
	defer func() {
		if !ok {
			gt.destroy(r.device)
		}
	}()

	size := hal.Extent3D{Width: tex.Width, Height: tex.Height, DepthOrArrayLayers: 1}
	var err error
	gt.texture, err = r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         r.label("texture_" + tex.Name),
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8UnormSrgb,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create texture %q: %w", tex.Name, err)
	}

	err = r.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  gt.texture,
			MipLevel: 0,
			Aspect:   gputypes.TextureAspectAll,
		},
		tex.Pixels,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  4 * tex.Width,
			RowsPerImage: tex.Height,
		},
		&size,
	)
	if err != nil {
		return nil, fmt.Errorf("write texture %q: %w", tex.Name, err)
	}

	gt.view, err = r.device.CreateTextureView(gt.texture, &hal.TextureViewDescriptor{
		Label:           r.label("texture_view_" + tex.Name),
		Format:          gputypes.TextureFormatRGBA8UnormSrgb,
		Dimension:       gputypes.TextureViewDimension2D,
		Aspect:          gputypes.TextureAspectAll,
		MipLevelCount:   1,
		ArrayLayerCount: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("create texture view %q: %w", tex.Name, err)
	}

	gt.sampler, err = r.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        r.label("sampler_" + tex.Name),
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeNearest,
		MipmapFilter: gputypes.FilterModeNearest,
		LodMaxClamp:  32,
		Anisotropy:   1,
	})
	if err != nil {
		return nil, fmt.Errorf("create sampler %q: %w", tex.Name, err)
	}

	gt.bindGroup, err = r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  r.label("texture_bind_group_" + tex.Name),
		Layout: r.textureLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.TextureViewBinding{TextureView: gt.view.NativeHandle()}},
			{Binding: 1, Resource: gputypes.SamplerBinding{Sampler: gt.sampler.NativeHandle()}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create texture bind group %q: %w", tex.Name, err)
	}

	ok = true
	r.stats.TextureUploads++
	return gt, nil
}

// resolveTexture returns the cached upload for tex, building it on first
// use. A nil texture resolves to the white fallback.
func (r *Renderer) resolveTexture(tex *scene.Texture) (*gpuTexture, error) {
	if tex == nil {
		tex = whiteTexture
	}
	gt, _, err := r.textures.GetOrCreate(tex.Name, func() (*gpuTexture, error) {
		return r.uploadTexture(tex)
	})
	return gt, err
}
