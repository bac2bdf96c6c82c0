package tinydraw

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Color is an 8-bit per channel, non-premultiplied RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

// Common colors
var (
	White       = FromRGB(255, 255, 255)
	Black       = FromRGB(0, 0, 0)
	Transparent = Color{}
)

// FromRGB creates an opaque color.
func FromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromRGBA creates a color with a normalized alpha in [0, 1].
// Alpha outside that range is clamped; NaN is treated as 0.
func FromRGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: alpha255(a)}
}

func alpha255(a float64) uint8 {
	switch {
	case math.IsNaN(a) || a < 0:
		return 0
	case a > 1:
		return 255
	}
	return uint8(math.Round(a * 255))
}

// ParseHex parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa".
// Surrounding whitespace is ignored. In the short forms each digit is
// doubled ("a" -> "aa").
//
// Returns ErrInvalidFormat for a wrong length or a missing '#', and
// ErrParseFailure for a non-hexadecimal digit.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	switch len(hex) {
	case 4, 5, 7, 9:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	if hex[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	hex = hex[1:]

	short := len(hex) <= 4
	width := 2
	if short {
		width = 1
	}

	var ch [4]uint8
	ch[3] = 255
	for i := 0; i*width < len(hex); i++ {
		v, ok := parseHex(hex[i*width : (i+1)*width])
		if !ok {
			return Color{}, fmt.Errorf("%w: %q", ErrParseFailure, s)
		}
		if short {
			v *= 17
		}
		ch[i] = v
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// MustParseHex is like ParseHex but panics on error.
// Use only for hardcoded color literals.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex decodes one or two hexadecimal digits.
func parseHex(s string) (uint8, bool) {
	var v uint8
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += c - '0'
		case 'a' <= c && c <= 'f':
			v += c - 'a' + 10
		case 'A' <= c && c <= 'F':
			v += c - 'A' + 10
		default:
			return 0, false
		}
	}
	return v, true
}

// Hex returns the canonical "#rrggbbaa" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// CSS returns "rgb(r, g, b)" for opaque colors and "rgba(r, g, b, a)"
// otherwise. The alpha term is the raw 0-255 channel value.
func (c Color) CSS() string {
	if c.A == 255 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// String returns the Hex form.
func (c Color) String() string {
	return c.Hex()
}

// Opaque reports whether alpha is 255.
func (c Color) Opaque() bool {
	return c.A == 255
}

// RGBA implements color.Color. It returns alpha-premultiplied 16-bit values.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts any color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
