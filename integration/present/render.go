// Copyright 2026 The tiny-draw Authors
// SPDX-License-Identifier: BSD-3-Clause

package present

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Rendering errors.
var (
	// ErrInvalidDrawContext is returned when the texture cannot be drawn by
	// the gpucontext.TextureDrawer.
	ErrInvalidDrawContext = errors.New("present: dc must draw gpucontext.Texture values")

	// ErrInvalidRenderer is returned when the draw context has no
	// gpucontext.TextureCreator.
	ErrInvalidRenderer = errors.New("present: draw context has no TextureCreator")

	// ErrNilDrawContext is returned when dc is nil.
	ErrNilDrawContext = errors.New("present: nil draw context")
)

// RenderOptions controls where the canvas is drawn.
type RenderOptions struct {
	// X, Y is the position of the texture in window pixels.
	X, Y float32
}

// RenderTo draws the canvas at (0, 0).
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    p.RenderTo(dc.AsTextureDrawer())
//	})
func (p *Presenter) RenderTo(dc gpucontext.TextureDrawer) error {
	return p.RenderToEx(dc, RenderOptions{})
}

// RenderToPosition draws the canvas at (x, y). Pass the canvas offset to
// line the window image up with page coordinates.
func (p *Presenter) RenderToPosition(dc gpucontext.TextureDrawer, x, y float32) error {
	return p.RenderToEx(dc, RenderOptions{X: x, Y: y})
}

// RenderToEx flushes the presenter and draws the texture with opts.
func (p *Presenter) RenderToEx(dc gpucontext.TextureDrawer, opts RenderOptions) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if dc == nil {
		return ErrNilDrawContext
	}

	tex, err := p.Flush()
	if err != nil {
		return err
	}

	if pending, ok := tex.(*pendingTexture); ok {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}
		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("present: NewTextureFromRGBA failed: %w", err)
		}
		// Canvas snapshots are premultiplied RGBA.
		if pt, ok := realTex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		p.texture = realTex
		tex = realTex

		// The upload waited for the GPU, so the replaced texture is idle now.
		p.destroyRetired()
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	return dc.DrawTexture(gpuTex, opts.X, opts.Y)
}
