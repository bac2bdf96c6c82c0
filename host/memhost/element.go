// Copyright 2026 The tiny-draw Authors
// SPDX-License-Identifier: BSD-3-Clause

package memhost

import (
	"fmt"
	"image"
	"strings"

	"github.com/zeronehost/tiny-draw/host"
)

// Element is a styleable in-memory element.
type Element struct {
	doc      *Document
	tag      string
	id       string
	label    string
	pos      host.Position
	parent   *Element
	children []host.Node
	style    map[string]string
}

var _ host.Element = (*Element)(nil)

func newElement(d *Document, tag, id string) *Element {
	return &Element{
		doc:   d,
		tag:   tag,
		id:    id,
		style: make(map[string]string),
	}
}

// element is implemented by *Element and by every type embedding it,
// including wrappers defined outside this package.
type element interface {
	element() *Element
}

func (e *Element) element() *Element { return e }

// asElement unwraps the element behind a node created by this package.
func asElement(n host.Node) (*Element, bool) {
	if v, ok := n.(element); ok && v.element() != nil {
		return v.element(), true
	}
	return nil, false
}

// ID returns the element id, empty for created elements.
func (e *Element) ID() string {
	return e.id
}

// NodeName implements host.Node.
func (e *Element) NodeName() string {
	return strings.ToUpper(e.tag)
}

// Style returns the inline value of a style property.
func (e *Element) Style(name string) string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	return e.style[name]
}

// Children returns the child nodes in document order.
func (e *Element) Children() []host.Node {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	out := make([]host.Node, len(e.children))
	copy(out, e.children)
	return out
}

// Parent returns the DOM parent, nil when detached or for the body.
func (e *Element) Parent() *Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	return e.parent
}

// SetStyle implements host.Element.
func (e *Element) SetStyle(name, value string) error {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	if err := e.doc.record(OpSetStyle, e.doc.name(e), name+": "+value); err != nil {
		return err
	}
	e.style[name] = value
	return nil
}

// AppendChild implements host.Element. A child that already has a parent
// is moved, as in the DOM.
func (e *Element) AppendChild(child host.Node) error {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	c, ok := asElement(child)
	if !ok {
		return ErrNotElement
	}
	if err := e.doc.record(OpAppendChild, e.doc.name(e), e.doc.name(c)); err != nil {
		return err
	}
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	c.parent = e
	e.children = append(e.children, child)
	return nil
}

// RemoveChild implements host.Element.
func (e *Element) RemoveChild(child host.Node) error {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	c, ok := asElement(child)
	if !ok {
		return ErrNotElement
	}
	if c.parent != e {
		return fmt.Errorf("%w: %s is not a child of %s", ErrNotChild, e.doc.name(c), e.doc.name(e))
	}
	if err := e.doc.record(OpRemoveChild, e.doc.name(e), e.doc.name(c)); err != nil {
		return err
	}
	e.removeChild(c)
	c.parent = nil
	return nil
}

func (e *Element) removeChild(c *Element) {
	for i, n := range e.children {
		if el, ok := asElement(n); ok && el == c {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return
		}
	}
}

// OffsetPosition implements host.Element.
func (e *Element) OffsetPosition() host.Position {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	return e.pos
}

// OffsetParent implements host.Element. It returns the nearest positioned
// ancestor, or the body when no ancestor is positioned. The body itself and
// detached elements have none.
func (e *Element) OffsetParent() (host.Element, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	for p := e.parent; p != nil; p = p.parent {
		if p == e.doc.body || positioned(p.style["position"]) {
			return p, true
		}
	}
	return nil, false
}

func positioned(v string) bool {
	switch v {
	case "relative", "absolute", "fixed", "sticky":
		return true
	}
	return false
}

// Canvas is an in-memory canvas element with an RGBA backing store.
type Canvas struct {
	*Element

	width, height int
	pix           *image.RGBA
	ctx           *Context
}

var _ host.CanvasElement = (*Canvas)(nil)

// SetSize implements host.CanvasElement. The backing store is reallocated
// and the context transform reset.
func (c *Canvas) SetSize(width, height int) error {
	c.doc.mu.Lock()
	defer c.doc.mu.Unlock()

	if err := c.doc.record(OpSetSize, c.doc.name(c.Element), sizeArg(width, height)); err != nil {
		return err
	}
	c.width, c.height = width, height
	c.pix = image.NewRGBA(image.Rect(0, 0, width, height))
	if c.ctx != nil {
		c.ctx.transform = host.Identity()
	}
	return nil
}

// Size implements host.CanvasElement.
func (c *Canvas) Size() (width, height int) {
	c.doc.mu.Lock()
	defer c.doc.mu.Unlock()

	return c.width, c.height
}

// Image returns the live backing store. Writes to it are visible in
// snapshots. Returns nil before the first SetSize.
func (c *Canvas) Image() *image.RGBA {
	c.doc.mu.Lock()
	defer c.doc.mu.Unlock()

	return c.pix
}

// Context2D implements host.CanvasElement. Every call returns the same context.
func (c *Canvas) Context2D() (host.Context2D, error) {
	c.doc.mu.Lock()
	defer c.doc.mu.Unlock()

	if err := c.doc.record(OpContext2D, c.doc.name(c.Element), "2d"); err != nil {
		return nil, err
	}
	if c.ctx == nil {
		c.ctx = &Context{canvas: c, transform: host.Identity()}
	}
	return c.ctx, nil
}

// Context is the 2D context of a Canvas.
type Context struct {
	canvas    *Canvas
	transform host.Matrix
}

var (
	_ host.Context2D   = (*Context)(nil)
	_ host.PixelSource = (*Context)(nil)
)

// SetTransform implements host.Context2D.
func (x *Context) SetTransform(m host.Matrix) error {
	d := x.canvas.doc
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.record(OpSetTransform, d.name(x.canvas.Element), matrixArg(m)); err != nil {
		return err
	}
	x.transform = m
	return nil
}

// Transform implements host.Context2D.
func (x *Context) Transform() host.Matrix {
	x.canvas.doc.mu.Lock()
	defer x.canvas.doc.mu.Unlock()

	return x.transform
}

// Pixels implements host.PixelSource.
func (x *Context) Pixels() *image.RGBA {
	x.canvas.doc.mu.Lock()
	defer x.canvas.doc.mu.Unlock()

	src := x.canvas.pix
	if src == nil {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	out := image.NewRGBA(src.Rect)
	copy(out.Pix, src.Pix)
	return out
}

// Text is a non-element node.
type Text struct {
	id string
}

// NodeName implements host.Node.
func (t *Text) NodeName() string {
	return "#text"
}

// ID returns the id the node was registered under.
func (t *Text) ID() string {
	return t.id
}
