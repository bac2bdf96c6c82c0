package tinydraw

import (
	"fmt"
	"math"

	"github.com/zeronehost/tiny-draw/host"
)

// devicePixelRatio returns the host ratio, or 1 when the host reports
// something unusable.
func (c *Canvas) devicePixelRatio() float64 {
	dpr := c.doc.DevicePixelRatio()
	if math.IsNaN(dpr) || math.IsInf(dpr, 0) || dpr <= 0 {
		Logger().Warn("tinydraw: unusable device pixel ratio, using 1", "dpr", dpr)
		return 1
	}
	return dpr
}

// applyScale sizes every backing store to round(logical*dpr), pins the
// displayed size to the logical size and sets a (dpr, dpr) scale transform
// so drawing code keeps working in logical units.
func (c *Canvas) applyScale() error {
	dpr := c.devicePixelRatio()
	bw := int(math.Round(float64(c.width) * dpr))
	bh := int(math.Round(float64(c.height) * dpr))

	for _, s := range c.surfaces {
		if err := s.el.SetSize(bw, bh); err != nil {
			return fmt.Errorf("%w: %s surface: %w", ErrScalingFailed, s.layer, err)
		}
		if err := applyStyles(s.el, sizeStyles(c.width, c.height)); err != nil {
			return fmt.Errorf("%w: %s surface: %w", ErrScalingFailed, s.layer, err)
		}
		// SetSize resets the context state, so the transform goes last.
		if err := s.ctx.SetTransform(host.Scale(dpr, dpr)); err != nil {
			return fmt.Errorf("%w: %s surface: %w", ErrScalingFailed, s.layer, err)
		}
		Logger().Debug("tinydraw: surface scaled",
			"layer", s.layer.String(), "backing_width", bw, "backing_height", bh, "dpr", dpr)
	}

	c.scale = dpr
	return nil
}

// Rescale reapplies device pixel correction with the current ratio, for
// example after the page moved to a display with a different density.
func (c *Canvas) Rescale() error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.applyScale()
}

// ScaleFactor returns the device pixel ratio applied by the last scaling.
func (c *Canvas) ScaleFactor() float64 {
	return c.scale
}
