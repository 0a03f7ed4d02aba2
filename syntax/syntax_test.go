package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"cssed/color"
	"cssed/vocab"
)

type want struct {
	text     string
	category Category
}

func newClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(nil, vocab.Default(), nil)
	require.NoError(t, err)
	return c
}

func collect(c *Classifier, text string) []want {
	var got []want
	for s := range c.Classify(text) {
		got = append(got, want{s.Text, s.Category})
	}
	return got
}

func TestClassify(t *testing.T) {
	c := newClassifier(t)

	tests := []struct {
		name string
		text string
		want []want
	}{
		{
			name: "rule",
			text: "foo { color: red; }",
			want: []want{{"color", CategoryPropertyName}, {"red", CategoryColorName}},
		},
		{
			name: "units",
			text: "width: 10px; margin: .5em; height: 50%",
			want: []want{
				{"width", CategoryPropertyName}, {"px", CategoryUnitName},
				{"margin", CategoryPropertyName}, {"em", CategoryUnitName},
				{"height", CategoryPropertyName}, {"%", CategoryUnitName},
			},
		},
		{
			name: "pseudo selectors",
			text: "a:hover, li:first-child::before",
			want: []want{
				{"a", CategoryTagName}, {":hover", CategoryPseudoSelector},
				{"li", CategoryTagName}, {":first-child", CategoryPseudoSelector}, {"::before", CategoryPseudoSelector},
			},
		},
		{
			name: "pseudo wins over property",
			text: "p:left",
			want: []want{{"p", CategoryTagName}, {":left", CategoryPseudoSelector}},
		},
		{
			name: "comments and strings are opaque",
			text: `/* color red */ a { content: "red"; }`,
			want: []want{
				{"/* color red */", CategoryComment}, {"a", CategoryTagName},
				{"content", CategoryPropertyName}, {`"red"`, CategoryString},
			},
		},
		{
			name: "word boundaries",
			text: "color-foo xcolor",
		},
		{
			name: "at rule",
			text: "@media print { body { display: none } }",
			want: []want{
				{"@media", CategoryAtKeyword}, {"print", CategoryAtKeyword},
				{"body", CategoryTagName}, {"display", CategoryPropertyName}, {"none", CategoryValueKeyword},
			},
		},
		{
			name: "empty",
			text: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, collect(c, tt.text))
		})
	}
}

func TestClassify_MediaWords(t *testing.T) {
	c := newClassifier(t)

	require.Equal(t, []want{
		{"@media", CategoryAtKeyword}, {"screen", CategoryAtKeyword}, {"and", CategoryAtKeyword},
		{"min-width", CategoryPropertyName}, {"px", CategoryUnitName},
	}, collect(c, "@media screen and (min-width: 10px)"))

	for _, text := range []string{
		".notification .brand #install { top: 0 }",
		"div.tvshow",
		".allow-print, #screenshot, .knot",
	} {
		t.Run(text, func(t *testing.T) {
			for s := range c.Classify(text) {
				require.NotEqual(t, CategoryAtKeyword, s.Category, "%q at %d", s.Text, s.Start)
			}
		})
	}
}

func TestBuildMatchers_SplitsBareWords(t *testing.T) {
	matchers, err := BuildMatchers(vocab.Default())
	require.NoError(t, err)

	var at []Boundary
	for _, m := range matchers {
		if m.Category == CategoryAtKeyword {
			at = append(at, m.Boundary)
		}
	}
	require.Equal(t, []Boundary{BoundaryNone, BoundarySymbol}, at)
	require.Equal(t, CategoryPseudoSelector, matchers[0].Category)
	require.Equal(t, BoundaryNone, matchers[0].Boundary)
}

func TestCategory_Names(t *testing.T) {
	require.Equal(t, "tag-name", CategoryTagName.String())
	c, err := ParseCategory("unit-name")
	require.NoError(t, err)
	require.Equal(t, CategoryUnitName, c)
	_, err = ParseCategory("keyword")
	require.ErrorIs(t, err, ErrInvalidCategory)
}

func TestClassify_Restartable(t *testing.T) {
	c := newClassifier(t)
	seq := c.Classify("div { top: 0 }")
	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	require.Equal(t, 3, first)
	require.Equal(t, first, second)
}

func TestClassify_NoOverlap(t *testing.T) {
	c := newClassifier(t)
	fragments := []string{
		"a", "div", " ", "{", "}", ":", ";", "color", "red", "10px", ".5em", "50%",
		":hover", "::before", "@media", "print", "/* x */", `"s"`, "'q'", "-", "_",
		"background-color", "#fff", "hsl(1,2%,3%)", "\n", "é", "table", "top",
	}
	rapid.Check(t, func(rt *rapid.T) {
		parts := rapid.SliceOf(rapid.SampledFrom(fragments)).Draw(rt, "parts")
		text := strings.Join(parts, "")

		prevEnd := 0
		for s := range c.Classify(text) {
			if s.Start < prevEnd || s.End <= s.Start || s.End > len(text) {
				rt.Fatalf("bad span [%d,%d) after %d in %q", s.Start, s.End, prevEnd, text)
			}
			if text[s.Start:s.End] != s.Text {
				rt.Fatalf("span text %q does not match input %q", s.Text, text[s.Start:s.End])
			}
			prevEnd = s.End
		}
	})
}

func TestSwatches(t *testing.T) {
	c := newClassifier(t)
	var got []color.Literal
	for lit := range c.Swatches("a { color: #fff; background: hsl(0,100%,50%) }") {
		got = append(got, lit)
	}
	require.Len(t, got, 2)
	require.Equal(t, "#ffffff", got[0].Background.String())
	require.Equal(t, "#ff0000", got[1].Background.String())
}

func TestMatcher_Longest(t *testing.T) {
	m, err := NewMatcher(CategoryPseudoSelector, BoundaryNone, []string{":first", ":first-child"})
	require.NoError(t, err)

	var got []string
	text := "li:first-child p:first"
	for s, e := range m.Matches(text) {
		got = append(got, text[s:e])
	}
	require.Equal(t, []string{":first-child", ":first"}, got)

	_, err = NewMatcher(CategoryTagName, BoundarySymbol, nil)
	require.Error(t, err)
}

func TestPartialWord(t *testing.T) {
	tests := []struct {
		text       string
		offset     int
		start, end int
	}{
		{"a { colo", 8, 4, 8},
		{"a { colo", 6, 4, 6},
		{"a { ", 4, 4, 4},
		{"a:ho", 4, 2, 4},
		{"abc", 100, 0, 3},
		{"abc", -1, 0, 0},
	}
	for _, tt := range tests {
		start, end := PartialWord(tt.text, tt.offset)
		require.Equal(t, tt.start, start, "%q@%d", tt.text, tt.offset)
		require.Equal(t, tt.end, end, "%q@%d", tt.text, tt.offset)
	}
}

func TestComplete(t *testing.T) {
	c := newClassifier(t)

	comp := c.Complete("a { colo", 8)
	require.Equal(t, "colo", comp.Partial)
	require.NotEmpty(t, comp.Candidates)
	require.Equal(t, "color", comp.Candidates[0])
	require.Contains(t, comp.Candidates, "background-color")

	text, cursor := Accept("a { colo }", comp, "color")
	require.Equal(t, "a { color }", text)
	require.Equal(t, 9, cursor)

	empty := c.Complete("a { ", 4)
	require.Equal(t, "", empty.Partial)
	require.Equal(t, vocab.Default().AllKeywords(), empty.Candidates)
}
