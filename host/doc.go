// Copyright 2026 The tiny-draw Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package host defines the capabilities tiny-draw consumes from the page
// that hosts it.
//
// The canvas core never touches concrete document types. Everything it needs
// (element lookup and creation, style mutation, layout geometry, 2D contexts,
// the device pixel ratio and resize notifications) is expressed as the small
// interfaces in this package. Backends implement them:
//
//   - host/jshost: the browser DOM through syscall/js (js/wasm builds only)
//   - host/memhost: a headless in-memory document with synthetic geometry
//
// # Backend Registry
//
// Backends register themselves by name with a priority. OpenDefault returns
// a document from the highest-priority backend that reports itself available:
//
//	import _ "github.com/zeronehost/tiny-draw/host/jshost"
//
//	doc, err := host.OpenDefault()
//
// # Thread Safety
//
// Documents follow the threading model of the page they wrap. The browser
// backend must only be used from the goroutine that runs the JS event loop.
package host
