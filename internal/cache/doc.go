// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides the keyed store the renderer uses for GPU
// resources that are built once per name.
//
//	textures := cache.New[string, *gpuTexture]()
//	tex, hit, err := textures.GetOrCreate(name, func() (*gpuTexture, error) {
//	    return upload(name)
//	})
//
// Entries are never evicted. A failed build stores nothing, so the next
// lookup builds again.
package cache
