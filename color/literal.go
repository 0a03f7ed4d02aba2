package color

import (
	"iter"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// LiteralKind tells which notation color literal uses: #rrggbb, #rgb or
// hsl(H,S%,L%).
// ENUM(none, hex6, hex3, hsl)
type LiteralKind int

var (
	hex6Literal = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	hex3Literal = regexp.MustCompile(`^#[0-9a-fA-F]{3}$`)
	// candidates are verified by ClassifyLiteral and boundary checks
	literalCandidate = regexp.MustCompile(`#[0-9a-fA-F]+|(?i:hsl)\([^()]*\)`)
)

// ClassifyLiteral decides which conversion path applies to a matched span.
func ClassifyLiteral(span string) LiteralKind {
	switch {
	case hex6Literal.MatchString(span):
		return LiteralKindHex6
	case hex3Literal.MatchString(span):
		return LiteralKindHex3
	case hslPattern.MatchString(span):
		return LiteralKindHsl
	}
	return LiteralKindNone
}

// ExpandHex3 turns "#abc" (or "abc") into "aabbcc". Anything else is
// returned without leading '#'.
func ExpandHex3(s string) string {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 3 {
		return s
	}
	return string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
}

// Literal is a color literal found in text with colors to preview it.
type Literal struct {
	Start, End int // byte offsets, End is exclusive
	Kind       LiteralKind
	Text       string
	Background RGB // the color itself
	Foreground RGB // readable text color on top of Background
}

// Swatch computes color of a single literal.
func (c *Converter) Swatch(span string) (RGB, LiteralKind, error) {
	kind := ClassifyLiteral(span)
	switch kind {
	case LiteralKindHex6:
		rgb, err := HexToRGB(span[1:])
		return rgb, kind, err
	case LiteralKindHex3:
		rgb, err := HexToRGB(ExpandHex3(span))
		return rgb, kind, err
	case LiteralKindHsl:
		hsl, err := c.ParseHSL(span)
		if err != nil {
			return RGB{}, kind, err
		}
		return HSLToRGB(hsl), kind, nil
	}
	return RGB{}, LiteralKindNone, ErrInvalidFormat
}

// Scan lazily walks text and yields every recognized color literal in order.
// Hex literals must not be glued to other symbol characters, so "#abcd" or
// "#aabbccdd" are not reported. Literals rejected by out of range policy are
// skipped.
func (c *Converter) Scan(text string) iter.Seq[Literal] {
	return func(yield func(Literal) bool) {
		for pos := 0; pos < len(text); {
			loc := literalCandidate.FindStringIndex(text[pos:])
			if loc == nil {
				return
			}
			start, end := pos+loc[0], pos+loc[1]
			pos = end
			if start > 0 && isSymbolByte(text[start-1]) && text[start] != '#' {
				continue
			}
			if end < len(text) && isSymbolByte(text[end]) && text[start] == '#' {
				continue
			}
			span := text[start:end]
			rgb, kind, err := c.Swatch(span)
			if err != nil {
				c.log.Debug("Skipping color literal", zap.String("literal", span), zap.Error(err))
				continue
			}
			if !yield(Literal{
				Start:      start,
				End:        end,
				Kind:       kind,
				Text:       span,
				Background: rgb,
				Foreground: rgb.Contrast(),
			}) {
				return
			}
		}
	}
}

// isSymbolByte reports characters which make a word in CSS identifiers.
func isSymbolByte(b byte) bool {
	return b == '-' || b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
