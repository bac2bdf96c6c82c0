package tinydraw

import (
	"fmt"
	"sync/atomic"

	"github.com/zeronehost/tiny-draw/host"
)

// Canvas is a stack of three same-sized drawing surfaces inside a container
// element: the draw surface, the interaction surface above it, and an
// off-screen cache surface. It keeps the surfaces sharp on high-density
// displays and tracks the page offset of the drawable region across resizes.
//
// Canvas methods are meant to be called from the host's UI goroutine.
// Offset may be called from any goroutine.
type Canvas struct {
	width      int
	height     int
	background Color
	doc        host.Document
	container  host.Element
	surfaces   [layerCount]*Surface
	offset     atomic.Pointer[Offset]
	scale      float64
	sub        host.Subscription
	closed     bool
}

// New builds a Canvas of the given logical size inside the element with id
// containerID.
//
// The container becomes the positioning reference for the draw and
// interaction surfaces, which are appended to it in that order. A resize
// listener keeps Offset current until Close is called.
//
// Every failure aborts construction and wraps one of ErrInvalidDimensions,
// ErrNoDocument, ErrContainerNotFound, ErrInvalidContainer,
// ErrSurfaceCreationFailed, ErrAttachFailed, ErrEventRegistrationFailed or
// ErrScalingFailed.
func New(containerID string, width, height int, opts ...Option) (*Canvas, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	doc := o.document
	if doc == nil {
		d, err := host.OpenDefault()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoDocument, err)
		}
		doc = d
	}

	container, err := initContainer(doc, containerID, width, height)
	if err != nil {
		return nil, err
	}

	c := &Canvas{
		width:      width,
		height:     height,
		background: o.background,
		doc:        doc,
		container:  container,
	}

	for l := LayerDraw; l < layerCount; l++ {
		s, err := newSurface(doc, l, width, height)
		if err != nil {
			return nil, err
		}
		c.surfaces[l] = s
	}

	var attached []*Surface
	for _, l := range []Layer{LayerDraw, LayerInteraction} {
		if err := container.AppendChild(c.surfaces[l].el); err != nil {
			detach(container, attached)
			return nil, fmt.Errorf("%w: %s surface: %w", ErrAttachFailed, l, err)
		}
		attached = append(attached, c.surfaces[l])
	}

	c.RefreshOffset()

	sub, err := doc.OnResize(c.onResize)
	if err != nil {
		detach(container, attached)
		return nil, fmt.Errorf("%w: %w", ErrEventRegistrationFailed, err)
	}
	c.sub = sub

	if err := c.applyScale(); err != nil {
		sub.Cancel()
		detach(container, attached)
		return nil, err
	}

	off := c.Offset()
	Logger().Info("tinydraw: canvas created",
		"container", containerID,
		"width", width,
		"height", height,
		"dpr", c.scale,
		"offset", off.String())
	return c, nil
}

// detach removes the surfaces a failed New attached, last first, so the
// container is left as it was found.
func detach(container host.Element, attached []*Surface) {
	for i := len(attached) - 1; i >= 0; i-- {
		s := attached[i]
		if err := container.RemoveChild(s.el); err != nil {
			Logger().Warn("tinydraw: detach failed", "layer", s.layer.String(), "err", err)
		}
	}
}

// initContainer resolves and styles the container element.
func initContainer(doc host.Document, id string, width, height int) (host.Element, error) {
	node, ok := doc.ElementByID(id)
	if !ok || node == nil {
		return nil, fmt.Errorf("%w: %q", ErrContainerNotFound, id)
	}
	el, ok := node.(host.Element)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %s", ErrInvalidContainer, id, node.NodeName())
	}

	styles := append([]style{{"position", "relative"}}, sizeStyles(width, height)...)
	styles = append(styles, style{"user-select", "none"})
	if err := applyStyles(el, styles); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidContainer, id, err)
	}
	return el, nil
}

// Offset returns the page position of the draw surface as of the latest
// resize notification. The result is a copy.
func (c *Canvas) Offset() Offset {
	return *c.offset.Load()
}

// RefreshOffset recomputes the offset now, stores it and returns it.
// The resize listener calls this on every notification.
func (c *Canvas) RefreshOffset() Offset {
	off := c.computeOffset()
	c.offset.Store(&off)
	return off
}

// computeOffset sums the position of the draw surface within its
// positioning ancestor and that of every ancestor up the chain. Nothing is
// cached: any ancestor may have moved since the last call.
func (c *Canvas) computeOffset() Offset {
	var top, left int
	var el host.Element = c.surfaces[LayerDraw].el
	for {
		p := el.OffsetPosition()
		top += p.Top
		left += p.Left

		parent, ok := el.OffsetParent()
		if !ok {
			break
		}
		el = parent
	}
	return NewOffset(top, left)
}

func (c *Canvas) onResize() {
	off := c.RefreshOffset()
	Logger().Debug("tinydraw: offset recomputed", "top", off.Top, "left", off.Left)
}

// Width returns the logical width.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the logical height.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns the logical width and height.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Background returns the background color.
func (c *Canvas) Background() Color {
	return c.background
}

// SetBackground records the background color and applies it to the
// container as its background-color.
func (c *Canvas) SetBackground(bg Color) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if err := c.container.SetStyle("background-color", bg.Hex()); err != nil {
		return fmt.Errorf("tinydraw: set background: %w", err)
	}
	c.background = bg
	return nil
}

// Container returns the container element.
func (c *Canvas) Container() host.Element {
	return c.container
}

// Surface returns the surface for layer, or nil for an unknown layer.
func (c *Canvas) Surface(layer Layer) *Surface {
	if layer < 0 || layer >= layerCount {
		return nil
	}
	return c.surfaces[layer]
}

// Close cancels the resize listener. The offset keeps its last value.
// Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.sub != nil {
		c.sub.Cancel()
		c.sub = nil
	}
	Logger().Info("tinydraw: canvas closed")
	return nil
}
