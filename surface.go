package tinydraw

import (
	"fmt"
	"strconv"

	"github.com/zeronehost/tiny-draw/host"
)

// Layer identifies one of the three surfaces of a Canvas.
type Layer int

const (
	// LayerDraw holds committed strokes. It is the bottom displayed surface.
	LayerDraw Layer = iota

	// LayerInteraction shows in-progress feedback above LayerDraw.
	LayerInteraction

	// LayerCache is an off-screen scratch buffer. It is never attached.
	LayerCache

	layerCount
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerDraw:
		return "draw"
	case LayerInteraction:
		return "interaction"
	case LayerCache:
		return "cache"
	}
	return "Layer(" + strconv.Itoa(int(l)) + ")"
}

// Displayed reports whether the layer is attached to the container.
func (l Layer) Displayed() bool {
	return l == LayerDraw || l == LayerInteraction
}

// Surface is a canvas element paired with its 2D context.
type Surface struct {
	layer Layer
	el    host.CanvasElement
	ctx   host.Context2D
}

// Layer returns the role of the surface.
func (s *Surface) Layer() Layer {
	return s.layer
}

// Element returns the canvas element.
func (s *Surface) Element() host.CanvasElement {
	return s.el
}

// Context returns the 2D drawing context. Its transform maps logical units
// to backing pixels.
func (s *Surface) Context() host.Context2D {
	return s.ctx
}

// BackingSize returns the backing store size in device pixels.
func (s *Surface) BackingSize() (width, height int) {
	return s.el.Size()
}

// ToBacking maps a logical point to backing store pixels through the
// current context transform.
func (s *Surface) ToBacking(x, y float64) (bx, by float64) {
	return s.ctx.Transform().TransformPoint(x, y)
}

// ToLogical maps a backing store pixel back to logical units, for example
// to hit-test a pixel read from Snapshot.
func (s *Surface) ToLogical(bx, by float64) (x, y float64) {
	return s.ctx.Transform().Invert().TransformPoint(bx, by)
}

// style is one inline style property.
type style struct {
	name, value string
}

func px(v int) string {
	return strconv.Itoa(v) + "px"
}

func sizeStyles(width, height int) []style {
	return []style{
		{"width", px(width)},
		{"height", px(height)},
	}
}

func applyStyles(el host.Element, styles []style) error {
	for _, s := range styles {
		if err := el.SetStyle(s.name, s.value); err != nil {
			return fmt.Errorf("set %s: %w", s.name, err)
		}
	}
	return nil
}

// newSurface creates a canvas of the logical size for layer. Displayed
// layers are stacked absolutely at the container origin with selection
// disabled; the cache layer only gets its pixel dimensions.
func newSurface(doc host.Document, layer Layer, width, height int) (*Surface, error) {
	node, err := doc.CreateElement("canvas")
	if err != nil {
		return nil, fmt.Errorf("%w: %s surface: %w", ErrSurfaceCreationFailed, layer, err)
	}
	el, ok := node.(host.CanvasElement)
	if !ok {
		return nil, fmt.Errorf("%w: %s surface: %s is not a canvas",
			ErrSurfaceCreationFailed, layer, node.NodeName())
	}
	if err := el.SetSize(width, height); err != nil {
		return nil, fmt.Errorf("%w: %s surface: %w", ErrSurfaceCreationFailed, layer, err)
	}

	if layer.Displayed() {
		styles := append([]style{
			{"position", "absolute"},
			{"top", "0"},
			{"left", "0"},
			{"user-select", "none"},
		}, sizeStyles(width, height)...)
		if err := applyStyles(el, styles); err != nil {
			return nil, fmt.Errorf("%w: %s surface: %w", ErrSurfaceCreationFailed, layer, err)
		}
	}

	ctx, err := el.Context2D()
	if err != nil {
		return nil, fmt.Errorf("%w: %s surface: %w", ErrSurfaceCreationFailed, layer, err)
	}
	return &Surface{layer: layer, el: el, ctx: ctx}, nil
}
