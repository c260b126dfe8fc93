// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"

	"github.com/gogpu/buff"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	_ "github.com/gogpu/wgpu/hal/noop" // registers the headless backend
)

// Device bundles the HAL objects a Renderer draws with.
type Device struct {
	Instance hal.Instance
	Surface  hal.Surface
	Device   hal.Device
	Queue    hal.Queue
	Info     gputypes.AdapterInfo
}

// GPUInfo returns a human-readable description of the selected adapter.
func (d *Device) GPUInfo() string {
	return fmt.Sprintf("%s (%s, %s)", d.Info.Name, d.Info.DeviceType, d.Info.Backend)
}

var backendNames = map[string]gputypes.Backend{
	"noop":   gputypes.BackendEmpty,
	"vulkan": gputypes.BackendVulkan,
	"metal":  gputypes.BackendMetal,
	"dx12":   gputypes.BackendDX12,
	"gl":     gputypes.BackendGL,
}

// Backend resolves a backend by name: "auto" picks the most capable
// registered backend, otherwise one of noop, vulkan, metal, dx12 or gl.
// Real GPU backends must be registered first, typically by importing
// github.com/gogpu/wgpu/hal/allbackends.
func Backend(name string) (hal.Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "auto" {
		b, err := hal.SelectBestBackend()
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnknownBackend, name, err)
		}
		return b, nil
	}

	variant, ok := backendNames[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	if b, ok := hal.GetBackend(variant); ok {
		return b, nil
	}
	b, err := hal.CreateBackend(variant)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownBackend, name, err)
	}
	hal.RegisterBackend(b)
	return b, nil
}

// OpenDevice creates an instance and a surface for the given native
// handles, then opens the first adapter that can present to it.
func OpenDevice(backend hal.Backend, displayHandle, windowHandle uintptr) (*Device, error) {
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{
		Backends: gputypes.BackendsAll,
	})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}

	surface, err := instance.CreateSurface(displayHandle, windowHandle)
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("create surface: %w", err)
	}

	adapters := instance.EnumerateAdapters(surface)
	if len(adapters) == 0 {
		surface.Destroy()
		instance.Destroy()
		return nil, ErrNoAdapter
	}
	exposed := adapters[0]

	open, err := exposed.Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		surface.Destroy()
		instance.Destroy()
		return nil, fmt.Errorf("open device: %w", err)
	}

	d := &Device{
		Instance: instance,
		Surface:  surface,
		Device:   open.Device,
		Queue:    open.Queue,
		Info:     exposed.Info,
	}
	buff.Logger().Info("render: adapter selected", "gpu", d.GPUInfo(), "driver", exposed.Info.Driver)
	return d, nil
}

// Close releases the device, the surface and the instance. Renderers
// using the device must be closed first.
func (d *Device) Close() {
	if d.Device != nil {
		if err := d.Device.WaitIdle(); err != nil {
			buff.Logger().Warn("render: wait idle failed", "err", err)
		}
		if d.Surface != nil {
			d.Surface.Unconfigure(d.Device)
		}
		d.Device.Destroy()
		d.Device = nil
	}
	if d.Surface != nil {
		d.Surface.Destroy()
		d.Surface = nil
	}
	if d.Instance != nil {
		d.Instance.Destroy()
		d.Instance = nil
	}
}
