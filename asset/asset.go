// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package asset decodes image files into scene textures.
//
// PNG, JPEG, GIF, BMP and WebP are recognized. Pixels are converted to
// tightly packed RGBA8 and, by default, flipped so the first row is the
// bottom of the image, matching the quad texture coordinates of
// scene.QuadMesh.
package asset

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/buff"
	"github.com/gogpu/buff/scene"
	_ "golang.org/x/image/bmp" // register BMP
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP
)

// ErrEmptyName is returned when a texture would have no cache name.
var ErrEmptyName = errors.New("asset: empty texture name")

// Option configures decoding.
type Option func(*options)

type options struct {
	flip    bool
	maxSize int
}

func defaultOptions() options {
	return options{flip: true}
}

// WithFlip sets whether rows are flipped vertically. Default: true.
func WithFlip(flip bool) Option {
	return func(o *options) {
		o.flip = flip
	}
}

// WithMaxSize downscales images whose larger side exceeds n pixels,
// keeping the aspect ratio. Zero disables scaling.
func WithMaxSize(n int) Option {
	return func(o *options) {
		o.maxSize = n
	}
}

// LoadTexture decodes the image at path. An empty name defaults to the file
// name without its extension.
func LoadTexture(path, name string, opts ...Option) (*scene.Texture, error) {
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("asset: open %s: %w", path, err)
	}
	defer f.Close()

	tex, err := DecodeTexture(f, name, opts...)
	if err != nil {
		return nil, fmt.Errorf("asset: load %s: %w", path, err)
	}
	return tex, nil
}

// DecodeTexture decodes an image from r into a texture called name.
func DecodeTexture(r io.Reader, name string, opts ...Option) (*scene.Texture, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", name, err)
	}
	rgba := toRGBA(img, o.maxSize)
	if o.flip {
		flipRows(rgba)
	}

	b := rgba.Bounds()
	buff.Logger().Debug("asset: texture decoded", "name", name, "format", format, "width", b.Dx(), "height", b.Dy())
	return scene.NewTexture(name, uint32(b.Dx()), uint32(b.Dy()), rgba.Pix), nil
}

// toRGBA copies img into a zero-origin RGBA image with no row padding,
// downscaling it when maxSize is exceeded.
func toRGBA(img image.Image, maxSize int) *image.RGBA {
	src := img.Bounds()
	w, h := scaledSize(src.Dx(), src.Dy(), maxSize)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == src.Dx() && h == src.Dy() {
		xdraw.Draw(dst, dst.Bounds(), img, src.Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
	}
	return dst
}

func scaledSize(w, h, maxSize int) (int, int) {
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return w, h
	}
	if w >= h {
		return maxSize, max(1, h*maxSize/w)
	}
	return max(1, w*maxSize/h), maxSize
}

// flipRows reverses the row order of img in place.
func flipRows(img *image.RGBA) {
	h := img.Bounds().Dy()
	stride := img.Stride
	tmp := make([]byte, stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*stride : (y+1)*stride]
		bottom := img.Pix[(h-1-y)*stride : (h-y)*stride]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// Checkerboard returns a width x height texture of alternating light and
// dark squares with sides of cell pixels.
func Checkerboard(name string, width, height, cell uint32) (*scene.Texture, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if cell == 0 {
		cell = 1
	}
	pix := make([]byte, 4*int(width)*int(height))
	for y := range height {
		for x := range width {
			v := byte(0x40)
			if (x/cell+y/cell)%2 == 0 {
				v = 0xd0
			}
			i := 4 * (int(y)*int(width) + int(x))
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 0xff
		}
	}
	return scene.NewTexture(name, width, height, pix), nil
}
