package syntax

import (
	"cmp"
	"iter"
	"slices"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"cssed/color"
	"cssed/vocab"
)

// Span is a classified range of text.
type Span struct {
	Start, End int // byte offsets, End is exclusive
	Category   Category
	Text       string
}

// Classifier assigns highlighting categories to CSS text. It keeps no
// per-call state and may be used concurrently.
type Classifier struct {
	log      *zap.Logger
	set      *vocab.Set
	matchers []*Matcher
	colors   *color.Converter
}

// NewClassifier builds matchers for the given vocabularies. When conv is nil
// color literals are converted with clamping policy.
func NewClassifier(log *zap.Logger, set *vocab.Set, conv *color.Converter) (*Classifier, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if set == nil {
		set = vocab.Default()
	}
	if conv == nil {
		conv = color.NewConverter(log, color.PolicyClamp)
	}
	matchers, err := BuildMatchers(set)
	if err != nil {
		return nil, err
	}
	return &Classifier{
		log:      log.Named("syntax"),
		set:      set,
		matchers: matchers,
		colors:   conv,
	}, nil
}

// Vocabulary returns vocabularies classifier was built from.
func (c *Classifier) Vocabulary() *vocab.Set {
	return c.set
}

// Classify returns spans of text in ascending order of start offset. Spans
// never overlap: comments and strings are found first and nothing inside
// them is classified further, then vocabularies are applied in priority
// order and a match overlapping any earlier span is dropped. Text not
// covered by any span is unclassified.
//
// Work is done when iteration starts, sequence may be iterated many times.
func (c *Classifier) Classify(text string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for _, s := range c.spans(text) {
			if !yield(s) {
				return
			}
		}
	}
}

// Swatches yields color literals found in text with their preview colors.
func (c *Classifier) Swatches(text string) iter.Seq[color.Literal] {
	return c.colors.Scan(text)
}

func (c *Classifier) spans(text string) []Span {
	taken := make([]bool, len(text))
	spans := c.opaque(text)
	for _, s := range spans {
		mark(taken, s.Start, s.End)
	}

	for _, m := range c.matchers {
		for start, end := range m.Matches(text) {
			if slices.Contains(taken[start:end], true) {
				continue
			}
			mark(taken, start, end)
			spans = append(spans, Span{Start: start, End: end, Category: m.Category, Text: text[start:end]})
		}
	}

	slices.SortFunc(spans, func(a, b Span) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return spans
}

// opaque locates comments and quoted strings using CSS tokenizer.
func (c *Classifier) opaque(text string) []Span {
	var (
		spans  []Span
		offset int
	)
	l := css.NewLexer(parse.NewInputString(text))
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			break
		}
		end := offset + len(data)
		// tokens must tile the input
		if end > len(text) || text[offset:end] != string(data) {
			c.log.Debug("Tokenizer lost track of input", zap.Int("offset", offset), zap.Stringer("token", tt))
			break
		}
		switch tt {
		case css.CommentToken:
			spans = append(spans, Span{Start: offset, End: end, Category: CategoryComment, Text: text[offset:end]})
		case css.StringToken, css.BadStringToken:
			spans = append(spans, Span{Start: offset, End: end, Category: CategoryString, Text: text[offset:end]})
		}
		offset = end
	}
	return spans
}

func mark(taken []bool, start, end int) {
	for i := start; i < end; i++ {
		taken[i] = true
	}
}
