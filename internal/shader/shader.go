// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shader turns scene.ShaderDefinition values into HAL shader
// modules.
package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/buff/scene"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/wgpu/hal"
)

var (
	// ErrEmptySource is returned for a definition without WGSL text.
	ErrEmptySource = errors.New("shader: empty source")

	// ErrMissingEntryPoint is returned for source lacking a @vertex or a
	// @fragment function.
	ErrMissingEntryPoint = errors.New("shader: missing entry point")
)

// EntryPoints names the functions a render pipeline calls.
type EntryPoints struct {
	Vertex   string
	Fragment string
}

// Module is a HAL shader module and the entry points found in its source.
type Module struct {
	Handle hal.ShaderModule
	EntryPoints
}

// Validate parses, lowers and validates WGSL source.
func Validate(source string) error {
	_, err := lower(source)
	return err
}

// Inspect validates source and returns its first @vertex and first
// @fragment function names.
func Inspect(source string) (EntryPoints, error) {
	module, err := lower(source)
	if err != nil {
		return EntryPoints{}, err
	}
	var eps EntryPoints
	for _, ep := range module.EntryPoints {
		switch {
		case ep.Stage == ir.StageVertex && eps.Vertex == "":
			eps.Vertex = ep.Name
		case ep.Stage == ir.StageFragment && eps.Fragment == "":
			eps.Fragment = ep.Name
		}
	}
	if eps.Vertex == "" {
		return eps, fmt.Errorf("%w: no @vertex function", ErrMissingEntryPoint)
	}
	if eps.Fragment == "" {
		return eps, fmt.Errorf("%w: no @fragment function", ErrMissingEntryPoint)
	}
	return eps, nil
}

func lower(source string) (*ir.Module, error) {
	if source == "" {
		return nil, ErrEmptySource
	}
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, err
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, err
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return nil, err
	}
	if len(verrs) > 0 {
		return nil, &verrs[0]
	}
	return module, nil
}

// CompileToSPIRV compiles WGSL source to SPIR-V words.
func CompileToSPIRV(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, err
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// CreateModule validates def, finds its entry points and creates a HAL
// shader module from it. With spirv set the module is handed to the
// backend as SPIR-V, otherwise as WGSL.
func CreateModule(device hal.Device, def *scene.ShaderDefinition, spirv bool) (*Module, error) {
	if def == nil {
		return nil, fmt.Errorf("shader: nil definition")
	}
	eps, err := Inspect(def.Source)
	if err != nil {
		return nil, fmt.Errorf("validate shader %q: %w", def.Name, err)
	}

	src := hal.ShaderSource{WGSL: def.Source}
	if spirv {
		words, err := CompileToSPIRV(def.Source)
		if err != nil {
			return nil, fmt.Errorf("compile shader %q: %w", def.Name, err)
		}
		src = hal.ShaderSource{SPIRV: words}
	}

	handle, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  def.Name,
		Source: src,
	})
	if err != nil {
		return nil, fmt.Errorf("create shader module %q: %w", def.Name, err)
	}
	return &Module{Handle: handle, EntryPoints: eps}, nil
}
