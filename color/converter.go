package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

//go:generate go tool go-enum --marshal --names

// Policy decides what happens to HSL components outside of their range:
// clamp brings component into range, fail rejects it with ErrOutOfRange.
// ENUM(clamp, fail)
type Policy int

const number = `([-+]?[0-9]+(?:\.[0-9]+)?)`

// hslPattern matches hsl(H,S%,L%) with optional whitespace around commas and digits.
var hslPattern = regexp.MustCompile(`^(?i:hsl)\(\s*` + number + `\s*,\s*` + number + `\s*%\s*,\s*` + number + `\s*%\s*\)$`)

// Converter performs conversions which depend on out of range policy.
type Converter struct {
	log    *zap.Logger
	policy Policy
}

// NewConverter creates converter with requested out of range policy.
func NewConverter(log *zap.Logger, policy Policy) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{log: log.Named("color"), policy: policy}
}

// Policy returns out of range policy of the converter.
func (c *Converter) Policy() Policy {
	return c.policy
}

// ParseHSL parses "hsl(H,S%,L%)". H is in degrees, S and L in percent.
func (c *Converter) ParseHSL(s string) (HSL, error) {
	m := hslPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return HSL{}, fmt.Errorf("%w: %q is not hsl(H,S%%,L%%)", ErrInvalidFormat, s)
	}
	var v [3]float64
	for i := range v {
		f, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return HSL{}, fmt.Errorf("%w: %q: %w", ErrInvalidFormat, s, err)
		}
		v[i] = f
	}
	return c.normalize(v[0], v[1], v[2])
}

// HSLToHex converts hue (degrees), saturation and lightness (percent) to 6
// lowercase hex digits without leading '#'.
func (c *Converter) HSLToHex(h, s, l float64) (string, error) {
	hsl, err := c.normalize(h, s, l)
	if err != nil {
		return "", err
	}
	return HSLToRGB(hsl).Hex(), nil
}

// normalize turns serialized components into fractions applying policy.
// Hue always wraps around the color wheel.
func (c *Converter) normalize(h, s, l float64) (HSL, error) {
	for _, v := range []float64{h, s, l} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return HSL{}, fmt.Errorf("%w: non finite value in hsl(%v,%v%%,%v%%)", ErrOutOfRange, h, s, l)
		}
	}

	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	if s < 0 || s > 100 || l < 0 || l > 100 {
		if c.policy == PolicyFail {
			return HSL{}, fmt.Errorf("%w: hsl(%v,%v%%,%v%%)", ErrOutOfRange, h, s, l)
		}
		c.log.Debug("Clamping HSL components", zap.Float64("s", s), zap.Float64("l", l))
		s = min(max(s, 0), 100)
		l = min(max(l, 0), 100)
	}
	return HSL{H: h / 360, S: s / 100, L: l / 100}, nil
}
