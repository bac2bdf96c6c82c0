// Copyright 2026 The tiny-draw Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build js && wasm

package jshost

import (
	"syscall/js"

	"github.com/zeronehost/tiny-draw/host"
)

// Node is a DOM node that is not an HTML element.
type Node struct {
	v js.Value
}

// NodeName implements host.Node.
func (n *Node) NodeName() string {
	return n.v.Get("nodeName").String()
}

// Value returns the underlying JS value.
func (n *Node) Value() js.Value {
	return n.v
}

// Element is an HTMLElement.
type Element struct {
	v js.Value
}

var _ host.Element = (*Element)(nil)

// NodeName implements host.Node.
func (e *Element) NodeName() string {
	return e.v.Get("nodeName").String()
}

// Value returns the underlying JS value.
func (e *Element) Value() js.Value {
	return e.v
}

// SetStyle implements host.Element.
func (e *Element) SetStyle(name, value string) error {
	_, err := call(e.v.Get("style"), "setProperty", name, value)
	return err
}

// AppendChild implements host.Element.
func (e *Element) AppendChild(child host.Node) error {
	v, ok := valueOf(child)
	if !ok {
		return ErrForeignNode
	}
	_, err := call(e.v, "appendChild", v)
	return err
}

// RemoveChild implements host.Element.
func (e *Element) RemoveChild(child host.Node) error {
	v, ok := valueOf(child)
	if !ok {
		return ErrForeignNode
	}
	_, err := call(e.v, "removeChild", v)
	return err
}

// OffsetPosition implements host.Element.
func (e *Element) OffsetPosition() host.Position {
	return host.Position{
		Top:  e.v.Get("offsetTop").Int(),
		Left: e.v.Get("offsetLeft").Int(),
	}
}

// OffsetParent implements host.Element.
func (e *Element) OffsetParent() (host.Element, bool) {
	p := e.v.Get("offsetParent")
	if !present(p) {
		return nil, false
	}
	return &Element{v: p}, true
}

func valueOf(n host.Node) (js.Value, bool) {
	switch v := n.(type) {
	case *Element:
		return v.v, true
	case *Canvas:
		return v.v, true
	case *Node:
		return v.v, true
	}
	return js.Undefined(), false
}

// Canvas is an HTMLCanvasElement.
type Canvas struct {
	Element
	ctx *Context
}

var _ host.CanvasElement = (*Canvas)(nil)

// SetSize implements host.CanvasElement.
func (c *Canvas) SetSize(width, height int) error {
	if err := set(c.v, "width", width); err != nil {
		return err
	}
	return set(c.v, "height", height)
}

// Size implements host.CanvasElement.
func (c *Canvas) Size() (width, height int) {
	return c.v.Get("width").Int(), c.v.Get("height").Int()
}

// Context2D implements host.CanvasElement.
func (c *Canvas) Context2D() (host.Context2D, error) {
	if c.ctx != nil {
		return c.ctx, nil
	}
	v, err := call(c.v, "getContext", "2d")
	if err != nil {
		return nil, err
	}
	if !present(v) {
		return nil, ErrNoContext
	}
	c.ctx = &Context{v: v}
	return c.ctx, nil
}

// Context is a CanvasRenderingContext2D.
type Context struct {
	v js.Value
}

var _ host.Context2D = (*Context)(nil)

// Value returns the underlying JS value.
func (x *Context) Value() js.Value {
	return x.v
}

// SetTransform implements host.Context2D.
func (x *Context) SetTransform(m host.Matrix) error {
	_, err := call(x.v, "setTransform", m.A, m.B, m.C, m.D, m.E, m.F)
	return err
}

// Transform implements host.Context2D.
func (x *Context) Transform() host.Matrix {
	t, err := call(x.v, "getTransform")
	if err != nil || !present(t) {
		return host.Identity()
	}
	return host.Matrix{
		A: t.Get("a").Float(),
		B: t.Get("b").Float(),
		C: t.Get("c").Float(),
		D: t.Get("d").Float(),
		E: t.Get("e").Float(),
		F: t.Get("f").Float(),
	}
}
