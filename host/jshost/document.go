// Copyright 2026 The tiny-draw Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build js && wasm

package jshost

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/zeronehost/tiny-draw/host"
)

// Errors returned by the browser backend.
var (
	// ErrNoDocument is returned when the global document is missing.
	ErrNoDocument = errors.New("jshost: document is not available")

	// ErrNoContext is returned when getContext("2d") yields null.
	ErrNoContext = errors.New("jshost: 2d context is not available")

	// ErrForeignNode is returned when a node did not come from this package.
	ErrForeignNode = errors.New("jshost: node does not belong to the DOM backend")
)

func init() {
	host.Register("js", 100, func() (host.Document, error) {
		return New()
	}, func() bool {
		return present(js.Global().Get("document"))
	})
}

// Document wraps window.document.
type Document struct {
	window   js.Value
	document js.Value
}

var _ host.Document = (*Document)(nil)

// New returns the page document.
func New() (*Document, error) {
	global := js.Global()
	doc := global.Get("document")
	if !present(doc) {
		return nil, ErrNoDocument
	}
	return &Document{window: global, document: doc}, nil
}

// ElementByID implements host.Document.
func (d *Document) ElementByID(id string) (host.Node, bool) {
	v, err := call(d.document, "getElementById", id)
	if err != nil || !present(v) {
		return nil, false
	}
	return wrap(v), true
}

// CreateElement implements host.Document.
func (d *Document) CreateElement(tag string) (host.Node, error) {
	v, err := call(d.document, "createElement", tag)
	if err != nil {
		return nil, fmt.Errorf("jshost: createElement(%q): %w", tag, err)
	}
	return wrap(v), nil
}

// DevicePixelRatio implements host.Document.
func (d *Document) DevicePixelRatio() float64 {
	v := d.window.Get("devicePixelRatio")
	if v.Type() != js.TypeNumber {
		return 1
	}
	return v.Float()
}

// OnResize implements host.Document. Cancel removes the listener and
// releases the Go callback.
func (d *Document) OnResize(fn func()) (host.Subscription, error) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	if _, err := call(d.window, "addEventListener", "resize", cb); err != nil {
		cb.Release()
		return nil, fmt.Errorf("jshost: addEventListener(resize): %w", err)
	}

	released := false
	return host.SubscriptionFunc(func() {
		if released {
			return
		}
		released = true
		_, _ = call(d.window, "removeEventListener", "resize", cb)
		cb.Release()
	}), nil
}

// wrap picks the narrowest Go type for a DOM value.
func wrap(v js.Value) host.Node {
	switch {
	case instanceOf(v, "HTMLCanvasElement"):
		return &Canvas{Element: Element{v: v}}
	case instanceOf(v, "HTMLElement"):
		return &Element{v: v}
	}
	return &Node{v: v}
}

func instanceOf(v js.Value, class string) bool {
	c := js.Global().Get(class)
	return present(c) && v.Type() == js.TypeObject && v.InstanceOf(c)
}

func present(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}

// call invokes a method and converts a thrown JS exception into an error.
func call(v js.Value, method string, args ...any) (res js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				err = jsErr
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	return v.Call(method, args...), nil
}

// set assigns a property and converts a thrown JS exception into an error.
func set(v js.Value, prop string, value any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("jshost: set %s: %v", prop, r)
		}
	}()
	v.Set(prop, value)
	return nil
}
