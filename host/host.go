// Copyright 2026 The tiny-draw Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import "image"

// Position is the location of an element relative to its positioning
// ancestor, in CSS pixels.
type Position struct {
	Top, Left int
}

// Node is any object reachable in the host document.
// Not every node can be styled; callers type-assert to Element.
type Node interface {
	// NodeName returns the upper-case tag name, or a pseudo name such as
	// "#text" for nodes that are not elements.
	NodeName() string
}

// Element is a styleable node that takes part in layout.
type Element interface {
	Node

	// SetStyle sets a single inline style property.
	SetStyle(name, value string) error

	// AppendChild appends child as the last child of the element.
	AppendChild(child Node) error

	// RemoveChild detaches child from the element.
	RemoveChild(child Node) error

	// OffsetPosition returns the element position within its
	// positioning ancestor.
	OffsetPosition() Position

	// OffsetParent returns the nearest positioning ancestor.
	// The second result is false at the top of the chain.
	OffsetParent() (Element, bool)
}

// CanvasElement is an element with a pixel backing store.
type CanvasElement interface {
	Element

	// SetSize sets the backing store size in device pixels.
	// Hosts discard the contents and reset the context state, as the DOM does.
	SetSize(width, height int) error

	// Size returns the backing store size in device pixels.
	Size() (width, height int)

	// Context2D returns the 2D drawing context of the canvas.
	Context2D() (Context2D, error)
}

// Context2D is the drawing context of a canvas element.
type Context2D interface {
	// SetTransform replaces the current transform.
	SetTransform(m Matrix) error

	// Transform returns the current transform.
	Transform() Matrix
}

// PixelSource is implemented by contexts whose backing store can be read
// back. The returned image is a copy.
type PixelSource interface {
	Pixels() *image.RGBA
}

// Subscription is a registered host callback.
type Subscription interface {
	// Cancel unregisters the callback. Cancel is idempotent.
	Cancel()
}

// Document is the page that owns elements and dispatches events.
type Document interface {
	// ElementByID returns the node with the given id.
	ElementByID(id string) (Node, bool)

	// CreateElement creates a detached element for tag.
	CreateElement(tag string) (Node, error)

	// DevicePixelRatio returns the ratio of device pixels to CSS pixels.
	DevicePixelRatio() float64

	// OnResize registers fn to be called after every page resize.
	// The host never runs fn concurrently with itself.
	OnResize(fn func()) (Subscription, error)
}

// SubscriptionFunc adapts a plain function to the Subscription interface.
type SubscriptionFunc func()

// Cancel calls f.
func (f SubscriptionFunc) Cancel() { f() }
