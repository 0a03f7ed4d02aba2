// Package color converts between hexadecimal RGB and HSL color notations and
// finds color literals in CSS text for swatch preview.
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var (
	// ErrInvalidFormat is returned when input does not look like a color of the expected notation.
	ErrInvalidFormat = errors.New("invalid color format")
	// ErrOutOfRange is returned for numeric components outside of their range when clamping is not requested.
	ErrOutOfRange = errors.New("color component out of range")
)

// truncation guard, keeps values like 49.9999999 (which are 50 in exact
// arithmetic) from losing a whole unit
const epsilon = 1e-9

var hex6Pattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// RGB keeps color channels as fractions in [0, 1].
type RGB struct {
	R, G, B float64
}

// HSL keeps hue, saturation and lightness as fractions in [0, 1].
type HSL struct {
	H, S, L float64
}

func fromBytes(r, g, b uint8) RGB {
	return RGB{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

// Bytes returns channels scaled to [0, 255], rounded half away from zero.
func (c RGB) Bytes() (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

// Hex returns 6 lowercase hex digits without leading '#'.
func (c RGB) Hex() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("%02x%02x%02x", r, g, b)
}

// String returns CSS representation, e.g. "#ffefd5".
func (c RGB) String() string {
	return "#" + c.Hex()
}

func toByte(v float64) uint8 {
	i := math.Round(v * 255)
	switch {
	case i < 0:
		return 0
	case i > 255:
		return 255
	}
	return uint8(i)
}

// String formats color as "hsl(H,S%,L%)" with components truncated to integers.
func (c HSL) String() string {
	h := int(math.Trunc(c.H*360 + epsilon))
	if h >= 360 {
		h -= 360
	}
	s := int(math.Trunc(c.S*100 + epsilon))
	l := int(math.Trunc(c.L*100 + epsilon))
	return "hsl(" + strconv.Itoa(h) + "," + strconv.Itoa(s) + "%," + strconv.Itoa(l) + "%)"
}

// HexToRGB parses exactly six hexadecimal digits (no leading '#').
func HexToRGB(hex6 string) (RGB, error) {
	if !hex6Pattern.MatchString(hex6) {
		return RGB{}, fmt.Errorf("%w: %q is not 6 hexadecimal digits", ErrInvalidFormat, hex6)
	}
	v, err := strconv.ParseUint(hex6, 16, 32)
	if err != nil {
		// should never happen after pattern check
		return RGB{}, fmt.Errorf("%w: %q: %w", ErrInvalidFormat, hex6, err)
	}
	return fromBytes(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// HexToHSL converts 6 hexadecimal digits to "hsl(H,S%,L%)" string.
func HexToHSL(hex6 string) (string, error) {
	c, err := HexToRGB(hex6)
	if err != nil {
		return "", err
	}
	return RGBToHSL(c).String(), nil
}

// RGBToHSL converts using max/min channel formula.
func RGBToHSL(c RGB) HSL {
	hi := max(c.R, c.G, c.B)
	lo := min(c.R, c.G, c.B)

	l := (hi + lo) / 2
	if hi == lo {
		// achromatic
		return HSL{L: l}
	}

	d := hi - lo
	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case c.R:
		h = (c.G - c.B) / d
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return HSL{H: h / 360, S: s, L: l}
}

// HSLToRGB is the inverse of RGBToHSL.
func HSLToRGB(c HSL) RGB {
	if c.S == 0 {
		return RGB{R: c.L, G: c.L, B: c.L}
	}
	var t2 float64
	if c.L <= 0.5 {
		t2 = c.L * (c.S + 1)
	} else {
		t2 = c.L + c.S - c.L*c.S
	}
	t1 := c.L*2 - t2
	return RGB{
		R: hueToChannel(t1, t2, c.H+1.0/3.0),
		G: hueToChannel(t1, t2, c.H),
		B: hueToChannel(t1, t2, c.H-1.0/3.0),
	}
}

func hueToChannel(t1, t2, hue float64) float64 {
	hue -= math.Floor(hue)
	hue *= 6.0
	switch {
	case hue < 1:
		return (t2-t1)*hue + t1
	case hue < 3:
		return t2
	case hue < 4:
		return (t2-t1)*(4-hue) + t1
	default:
		return t1
	}
}

// Contrast returns black or white, whichever is readable on top of c.
func (c RGB) Contrast() RGB {
	if 0.299*c.R+0.587*c.G+0.114*c.B > 0.5 {
		return RGB{}
	}
	return RGB{R: 1, G: 1, B: 1}
}
