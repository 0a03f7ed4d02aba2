// Package compact rewrites CSS text with ordered substitution rules.
//
// Literal rules are applied simultaneously: no rule ever sees output of
// another rule from the same pass. This is done in two phases. First every
// occurrence of each rule's find string is replaced by a placeholder rune
// unique to that rule, then every placeholder is replaced by the rule's
// replacement. Placeholders come from Supplementary Private Use Area-A and
// input containing such code points cannot be processed correctly.
package compact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	bandFirst rune = 0xF0000
	bandLast  rune = 0xFFFFD
	// MaxRules is the number of literal rules placeholder band can serve.
	MaxRules = int(bandLast-bandFirst) + 1
)

var (
	ErrEmptyPattern         = errors.New("empty pattern")
	ErrTooManyRules         = errors.New("too many rules")
	ErrPlaceholderCollision = errors.New("text contains reserved code point")
)

// Rule is a literal substitution.
type Rule struct {
	Find    string
	Replace string
}

// RegexRule is a regular expression substitution, Replace may refer to
// submatches as in regexp.Regexp.ReplaceAllString.
type RegexRule struct {
	Pattern string
	Replace string
}

// Range is a byte range of text, End is exclusive.
type Range struct {
	Start, End int
}

type compiledRule struct {
	re      *regexp.Regexp
	replace string
}

// Rewriter applies fixed rule lists. It is immutable and safe for concurrent
// use.
type Rewriter struct {
	log          *zap.Logger
	regex        []compiledRule
	literal      []Rule
	placeholders []string
	check        bool
}

// Option configures Rewriter.
type Option func(*Rewriter)

// WithPlaceholderCheck turns on scanning of input for reserved code points.
// When off, such input produces corrupted output.
func WithPlaceholderCheck(on bool) Option {
	return func(r *Rewriter) {
		r.check = on
	}
}

// New validates and compiles rules. Regex rules run first, in order, then
// literal rules run as one simultaneous substitution.
func New(log *zap.Logger, literal []Rule, regex []RegexRule, opts ...Option) (*Rewriter, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(literal) > MaxRules {
		return nil, fmt.Errorf("%w: %d literal rules, at most %d supported", ErrTooManyRules, len(literal), MaxRules)
	}

	r := &Rewriter{
		log:          log.Named("compact"),
		literal:      make([]Rule, 0, len(literal)),
		placeholders: make([]string, 0, len(literal)),
		check:        true,
	}
	for _, opt := range opts {
		opt(r)
	}

	for i, rr := range regex {
		if rr.Pattern == "" {
			return nil, fmt.Errorf("regex rule %d: %w", i, ErrEmptyPattern)
		}
		re, err := regexp.Compile(rr.Pattern)
		if err != nil {
			return nil, fmt.Errorf("regex rule %d: %w", i, err)
		}
		r.regex = append(r.regex, compiledRule{re: re, replace: rr.Replace})
	}
	for i, lr := range literal {
		if lr.Find == "" {
			return nil, fmt.Errorf("literal rule %d: %w", i, ErrEmptyPattern)
		}
		for _, s := range []string{lr.Find, lr.Replace} {
			if off := reserved(s); off >= 0 {
				return nil, fmt.Errorf("literal rule %d: %w at offset %d", i, ErrPlaceholderCollision, off)
			}
		}
		r.literal = append(r.literal, lr)
		r.placeholders = append(r.placeholders, string(bandFirst+rune(i)))
	}
	return r, nil
}

// Compact rewrites whole text.
func (r *Rewriter) Compact(text string) (string, error) {
	if r.check {
		if off := reserved(text); off >= 0 {
			c, _ := utf8.DecodeRuneInString(text[off:])
			return "", fmt.Errorf("%w %U at offset %d", ErrPlaceholderCollision, c, off)
		}
	}

	for _, rule := range r.regex {
		text = rule.re.ReplaceAllString(text, rule.replace)
	}

	// phase one: find strings become placeholders, earlier rules win
	for i, rule := range r.literal {
		text = strings.ReplaceAll(text, rule.Find, r.placeholders[i])
	}
	// phase two: placeholders become replacements
	for i, rule := range r.literal {
		text = strings.ReplaceAll(text, r.placeholders[i], rule.Replace)
	}
	return text, nil
}

// CompactRange rewrites only text[rng.Start:rng.End] and returns new text
// together with range now occupied by rewritten part.
func (r *Rewriter) CompactRange(text string, rng Range) (string, Range, error) {
	rng = clampRange(text, rng)
	out, err := r.Compact(text[rng.Start:rng.End])
	if err != nil {
		return "", Range{}, err
	}
	r.log.Debug("Compacted range",
		zap.Int("start", rng.Start),
		zap.Int("end", rng.End),
		zap.Int("size", len(out)))
	return text[:rng.Start] + out + text[rng.End:], Range{Start: rng.Start, End: rng.Start + len(out)}, nil
}

func clampRange(text string, rng Range) Range {
	start := max(0, min(rng.Start, len(text)))
	end := max(start, min(rng.End, len(text)))
	return Range{Start: start, End: end}
}

// reserved returns offset of the first code point from placeholder band or -1.
func reserved(s string) int {
	for i, c := range s {
		if c >= bandFirst && c <= bandLast {
			return i
		}
	}
	return -1
}
