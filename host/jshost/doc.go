// Copyright 2026 The tiny-draw Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build js && wasm

// Package jshost implements the host capabilities on top of the browser DOM
// through syscall/js.
//
// Importing the package registers the "js" backend with priority 100. It is
// available whenever a global document object exists.
//
// All values must be used from the goroutine that services the JS event loop.
package jshost
