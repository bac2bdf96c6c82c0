package tinydraw

import (
	"image"

	"github.com/zeronehost/tiny-draw/host"
	xdraw "golang.org/x/image/draw"
)

// Snapshot composites the background, the draw surface and the interaction
// surface, in that order, at backing store resolution.
//
// The host contexts must implement host.PixelSource; otherwise
// ErrSnapshotUnsupported is returned.
func (c *Canvas) Snapshot() (*image.RGBA, error) {
	bw, bh := c.surfaces[LayerDraw].el.Size()
	dst := image.NewRGBA(image.Rect(0, 0, bw, bh))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(c.background), image.Point{}, xdraw.Src)

	for _, l := range []Layer{LayerDraw, LayerInteraction} {
		src, ok := c.surfaces[l].ctx.(host.PixelSource)
		if !ok {
			return nil, ErrSnapshotUnsupported
		}
		px := src.Pixels()
		xdraw.Draw(dst, dst.Bounds(), px, px.Bounds().Min, xdraw.Over)
	}
	return dst, nil
}

// SnapshotLogical is Snapshot resampled to the logical size.
func (c *Canvas) SnapshotLogical() (*image.RGBA, error) {
	src, err := c.Snapshot()
	if err != nil {
		return nil, err
	}
	dst := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	if dst.Bounds().Empty() || src.Bounds().Empty() {
		return dst, nil
	}
	if src.Bounds().Eq(dst.Bounds()) {
		copy(dst.Pix, src.Pix)
		return dst, nil
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
