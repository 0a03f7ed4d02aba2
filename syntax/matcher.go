// Package syntax classifies CSS text into highlighting categories using
// keyword vocabularies and provides completion over the same vocabularies.
package syntax

import (
	"cmp"
	"fmt"
	"iter"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"cssed/vocab"
)

//go:generate go tool go-enum --marshal --names

// Category of classified span.
// ENUM(none, comment, string, pseudo-selector, tag-name, property-name, value-keyword, color-name, unit-name, at-keyword)
type Category int

// Boundary defines what may surround a vocabulary match. Symbol requires
// both neighbours to be outside of [A-Za-z0-9_-]. Numeric also accepts a
// digit or '.' on the left, so units glued to numbers ("10px") match. None
// matches anywhere and is only used for words carrying their own leading
// punctuation (":hover", "@media").
// ENUM(symbol, numeric, none)
type Boundary int

// priority defines matcher order, earlier categories win on overlap.
var priority = []struct {
	kind     vocab.Kind
	category Category
	boundary Boundary
}{
	{vocab.KindPseudoSelectors, CategoryPseudoSelector, BoundaryNone},
	{vocab.KindTags, CategoryTagName, BoundarySymbol},
	{vocab.KindProperties, CategoryPropertyName, BoundarySymbol},
	{vocab.KindValueKeywords, CategoryValueKeyword, BoundarySymbol},
	{vocab.KindColorNames, CategoryColorName, BoundarySymbol},
	{vocab.KindUnits, CategoryUnitName, BoundaryNumeric},
	// media words ("screen", "and") follow "@media" bare
	{vocab.KindAtKeywords, CategoryAtKeyword, BoundaryNone},
}

// Matcher recognizes members of a single vocabulary.
type Matcher struct {
	Category Category
	Boundary Boundary
	re       *regexp.Regexp
}

// BuildMatchers creates matchers for every vocabulary in priority order:
// pseudo-selector, tag, property, value keyword, color name, unit, at-keyword.
// Words of a BoundaryNone vocabulary which start with a symbol character get
// their own BoundarySymbol matcher right after it, so bare words never match
// inside identifiers.
func BuildMatchers(set *vocab.Set) ([]*Matcher, error) {
	matchers := make([]*Matcher, 0, len(priority)+1)
	build := func(kind vocab.Kind, category Category, boundary Boundary, words []string) error {
		m, err := NewMatcher(category, boundary, words)
		if err != nil {
			return fmt.Errorf("unable to build %s matcher: %w", kind, err)
		}
		matchers = append(matchers, m)
		return nil
	}
	for _, p := range priority {
		words, bare := set.Get(p.kind).Words(), []string(nil)
		if p.boundary == BoundaryNone {
			words, bare = splitBare(words)
		}
		if len(words) > 0 || len(bare) == 0 {
			if err := build(p.kind, p.category, p.boundary, words); err != nil {
				return nil, err
			}
		}
		if len(bare) > 0 {
			if err := build(p.kind, p.category, BoundarySymbol, bare); err != nil {
				return nil, err
			}
		}
	}
	return matchers, nil
}

// splitBare separates words starting with punctuation from words starting
// with a symbol character.
func splitBare(words []string) (marked, bare []string) {
	for _, w := range words {
		if len(w) > 0 && isSymbolByte(w[0]) {
			bare = append(bare, w)
			continue
		}
		marked = append(marked, w)
	}
	return marked, bare
}

// NewMatcher compiles words into a single alternation. Longer words come
// first so that at any position the most specific member wins.
func NewMatcher(category Category, boundary Boundary, words []string) (*Matcher, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("no words for %s", category)
	}
	sorted := slices.Clone(words)
	slices.SortFunc(sorted, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	quoted := make([]string, 0, len(sorted))
	for _, w := range slices.Compact(sorted) {
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	re, err := regexp.Compile("(?:" + strings.Join(quoted, "|") + ")")
	if err != nil {
		return nil, err
	}
	return &Matcher{Category: category, Boundary: boundary, re: re}, nil
}

// Matches yields leftmost-first, non-overlapping matches as byte ranges.
func (m *Matcher) Matches(text string) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for pos := 0; pos < len(text); {
			loc := m.re.FindStringIndex(text[pos:])
			if loc == nil {
				return
			}
			start, end := pos+loc[0], pos+loc[1]
			if m.accept(text, start, end) {
				if !yield(start, end) {
					return
				}
				pos = end
				continue
			}
			_, w := utf8.DecodeRuneInString(text[start:])
			pos = start + w
		}
	}
}

func (m *Matcher) accept(text string, start, end int) bool {
	if m.Boundary == BoundaryNone {
		return true
	}
	if end < len(text) && isSymbolByte(text[end]) {
		return false
	}
	if start == 0 || !isSymbolByte(text[start-1]) {
		return true
	}
	prev := text[start-1]
	return m.Boundary == BoundaryNumeric && (('0' <= prev && prev <= '9') || prev == '.')
}

func isSymbolByte(b byte) bool {
	return b == '-' || b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
