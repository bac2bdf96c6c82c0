// Copyright 2026 The tiny-draw Authors
// SPDX-License-Identifier: BSD-3-Clause

package present

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
	tinydraw "github.com/zeronehost/tiny-draw"
)

// Common errors returned by Presenter operations.
var (
	// ErrPresenterClosed is returned when operations are attempted on a
	// closed presenter.
	ErrPresenterClosed = errors.New("present: presenter is closed")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("present: nil DeviceProvider")

	// ErrNilSource is returned when a nil Source is passed.
	ErrNilSource = errors.New("present: nil Source")
)

// Source produces the pixels to present. *tinydraw.Canvas implements it.
type Source interface {
	Snapshot() (*image.RGBA, error)
}

var _ Source = (*tinydraw.Canvas)(nil)

// textureDestroyer matches gogpu.Texture.Destroy.
type textureDestroyer interface {
	Destroy()
}

// Presenter uploads snapshots of a Source into a GPU texture.
type Presenter struct {
	src        Source
	provider   gpucontext.DeviceProvider
	texture    any // *pendingTexture until the first render, then a GPU texture
	oldTexture any // replaced texture awaiting deferred destruction
	width      int
	height     int
	dirty      bool
	closed     bool
}

// New creates a Presenter. The provider should come from
// gogpu.App.GPUContextProvider().
func New(provider gpucontext.DeviceProvider, src Source) (*Presenter, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if src == nil {
		return nil, ErrNilSource
	}
	return &Presenter{
		src:      src,
		provider: provider,
		dirty:    true, // First Flush creates the texture
	}, nil
}

// MarkDirty flags the presenter for upload on the next Flush.
// Call it after drawing into the canvas surfaces.
func (p *Presenter) MarkDirty() {
	p.dirty = true
}

// IsDirty reports whether a new snapshot is pending.
func (p *Presenter) IsDirty() bool {
	return p.dirty
}

// Size returns the size of the last uploaded snapshot in device pixels.
func (p *Presenter) Size() (width, height int) {
	return p.width, p.height
}

// Flush takes a snapshot if dirty and updates the texture.
// The texture is created lazily on the first render.
func (p *Presenter) Flush() (any, error) {
	if p.closed {
		return nil, ErrPresenterClosed
	}
	if !p.dirty && p.texture != nil {
		return p.texture, nil
	}

	img, err := p.src.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("present: snapshot failed: %w", err)
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	// A size change needs a new texture. The old one may still be in use by
	// in-flight command buffers, so it is destroyed after the next upload.
	if p.texture != nil && (w != p.width || h != p.height) {
		p.retire(p.texture)
		p.texture = nil
	}
	p.width, p.height = w, h

	if p.texture == nil {
		p.texture = &pendingTexture{width: w, height: h, data: img.Pix}
		p.dirty = false
		return p.texture, nil
	}

	switch t := p.texture.(type) {
	case *pendingTexture:
		t.data = img.Pix
	case gpucontext.TextureUpdater:
		if err := t.UpdateData(img.Pix); err != nil {
			tinydraw.Logger().Warn("present: texture update failed", "err", err)
			return nil, fmt.Errorf("present: texture update failed: %w", err)
		}
	}

	p.dirty = false
	return p.texture, nil
}

// Texture returns the current texture without flushing.
func (p *Presenter) Texture() any {
	return p.texture
}

// Provider returns the DeviceProvider, or nil once closed.
func (p *Presenter) Provider() gpucontext.DeviceProvider {
	if p.closed {
		return nil
	}
	return p.provider
}

// Close releases the textures. Close is idempotent.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	p.destroyRetired()
	if d, ok := p.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	p.texture = nil
	p.provider = nil
	p.src = nil
	return nil
}

// retire schedules tex for destruction after the next upload.
func (p *Presenter) retire(tex any) {
	p.destroyRetired()
	p.oldTexture = tex
}

func (p *Presenter) destroyRetired() {
	if d, ok := p.oldTexture.(textureDestroyer); ok {
		d.Destroy()
	}
	p.oldTexture = nil
}

// pendingTexture holds pixels until a TextureCreator is available.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
