package tinydraw

import "fmt"

// Offset is the page position of the drawable region's top-left corner,
// in CSS pixels. Values may be negative.
type Offset struct {
	Top, Left int
}

// NewOffset creates an Offset.
func NewOffset(top, left int) Offset {
	return Offset{Top: top, Left: left}
}

// ToLocal converts a page coordinate, such as a pointer event's pageX and
// pageY, into logical surface coordinates.
func (o Offset) ToLocal(pageX, pageY float64) (x, y float64) {
	return pageX - float64(o.Left), pageY - float64(o.Top)
}

// String returns "(top, left)".
func (o Offset) String() string {
	return fmt.Sprintf("(%d, %d)", o.Top, o.Left)
}
