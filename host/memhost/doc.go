// Copyright 2026 The tiny-draw Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package memhost is a headless, in-memory host document.
//
// Layout geometry is synthetic: every element carries a declared position
// within its positioning ancestor, and tests or tools move elements and then
// call DispatchResize to replay what a browser would report after a reflow.
// Canvas elements own a real RGBA backing store so snapshots can be taken
// without a browser.
//
// The document also works as a test double. Fail injects an error into any
// capability and Calls returns the log of mutating calls in order.
//
//	doc := memhost.NewDocument(memhost.WithDevicePixelRatio(2))
//	app, _ := doc.AddElement("app", "", 50, 20)
//	canvas, err := tinydraw.New("app", 300, 150, tinydraw.WithDocument(doc))
//
// Importing the package registers it as the "memory" backend.
package memhost
