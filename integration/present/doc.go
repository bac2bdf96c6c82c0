// Copyright 2026 The tiny-draw Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package present shows a tiny-draw canvas in a gogpu GPU window.
//
// The data flow is:
//
//	Canvas.Snapshot (CPU) -> GPU Texture -> Window
//
// A Presenter takes snapshots of its Source, uploads them to a texture and
// draws the texture through a gpucontext.TextureDrawer. Uploads only happen
// when the presenter is dirty.
//
//	p, err := present.New(app.GPUContextProvider(), canvas)
//	defer p.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = p.RenderTo(dc.AsTextureDrawer())
//	})
//
// # Thread Safety
//
// Presenter is NOT safe for concurrent use.
//
// # Integration Without Circular Imports
//
// Only gpucontext interfaces are used, so this package does not import gogpu.
package present
