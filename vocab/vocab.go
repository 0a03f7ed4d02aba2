// Package vocab holds keyword vocabularies used to classify CSS text and to
// offer completions. Vocabularies are data: built-in ones are embedded, and a
// YAML file with the same layout may replace them without code changes.
package vocab

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"
	"golang.org/x/text/unicode/norm"
)

//go:embed default.yaml
var defaultData []byte

// ErrInvalidVocabulary is returned when vocabulary data cannot be used.
var ErrInvalidVocabulary = errors.New("invalid vocabulary")

//go:generate go tool go-enum --marshal --names

// Kind names one of the vocabularies.
// ENUM(tags, properties, pseudo_selectors, at_keywords, units, value_keywords, color_names)
type Kind int

var kindsArray = [...]Kind{KindTags, KindProperties, KindPseudoSelectors, KindAtKeywords, KindUnits, KindValueKeywords, KindColorNames}

// Kinds lists all vocabulary kinds in declaration order.
func Kinds() []Kind {
	return slices.Clone(kindsArray[:])
}

// Vocabulary is an immutable named list of keywords.
type Vocabulary struct {
	kind  Kind
	words []string
}

// Kind returns vocabulary kind.
func (v Vocabulary) Kind() Kind {
	return v.kind
}

// Words returns a copy of vocabulary members in original order.
func (v Vocabulary) Words() []string {
	return slices.Clone(v.words)
}

// Len returns number of members.
func (v Vocabulary) Len() int {
	return len(v.words)
}

// Contains reports whether word is a member.
func (v Vocabulary) Contains(word string) bool {
	return slices.Contains(v.words, word)
}

// Set keeps all seven vocabularies. It is never modified after creation and
// may be shared freely.
type Set struct {
	vocabs   [len(kindsArray)]Vocabulary
	keywords []string
}

// Get returns vocabulary of requested kind.
func (s *Set) Get(k Kind) Vocabulary {
	return s.vocabs[k]
}

// All returns every vocabulary in Kinds() order.
func (s *Set) All() []Vocabulary {
	return slices.Clone(s.vocabs[:])
}

// AllKeywords returns union of all vocabularies with duplicates removed,
// sorted in natural order. Used as completion dictionary.
func (s *Set) AllKeywords() []string {
	return slices.Clone(s.keywords)
}

// document is on-disk layout of vocabulary data.
type document struct {
	Tags            []string `yaml:"tags"`
	Properties      []string `yaml:"properties"`
	PseudoSelectors []string `yaml:"pseudo_selectors"`
	AtKeywords      []string `yaml:"at_keywords"`
	Units           []string `yaml:"units"`
	ValueKeywords   []string `yaml:"value_keywords"`
	ColorNames      []string `yaml:"color_names"`
}

func (d *document) lists() [len(kindsArray)][]string {
	return [...][]string{d.Tags, d.Properties, d.PseudoSelectors, d.AtKeywords, d.Units, d.ValueKeywords, d.ColorNames}
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns built-in vocabularies.
func Default() *Set {
	defaultOnce.Do(func() {
		var err error
		if defaultSet, err = Load(bytes.NewReader(defaultData)); err != nil {
			// embedded data is covered by tests
			panic(fmt.Sprintf("built-in vocabulary is broken: %v", err))
		}
	})
	return defaultSet
}

// LoadFile reads vocabularies from YAML file.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open vocabulary file: %w", err)
	}
	defer f.Close()

	set, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("unable to load vocabulary from '%s': %w", path, err)
	}
	return set, nil
}

// Load reads vocabularies from YAML. Every vocabulary must be present and
// non-empty; all problems found are reported together.
func Load(r io.Reader) (*Set, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode vocabulary data: %w", ErrInvalidVocabulary, err)
	}
	return New(doc.lists())
}

// New builds Set from word lists indexed by Kind.
func New(lists [len(kindsArray)][]string) (*Set, error) {
	var (
		set  Set
		errs error
	)
	for _, k := range kindsArray {
		words, err := prepare(k, lists[k])
		errs = multierr.Append(errs, err)
		set.vocabs[k] = Vocabulary{kind: k, words: words}
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidVocabulary, errs)
	}

	seen := make(map[string]struct{})
	for _, v := range set.vocabs {
		for _, w := range v.words {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			set.keywords = append(set.keywords, w)
		}
	}
	slices.SortFunc(set.keywords, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return strings.Compare(a, b)
	})
	return &set, nil
}

func prepare(k Kind, in []string) ([]string, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%s: vocabulary is empty", k)
	}
	var errs error
	out := make([]string, 0, len(in))
	for i, w := range in {
		w = norm.NFC.String(strings.TrimSpace(w))
		switch {
		case w == "":
			errs = multierr.Append(errs, fmt.Errorf("%s[%d]: blank entry", k, i))
			continue
		case strings.ContainsAny(w, " \t\r\n"):
			errs = multierr.Append(errs, fmt.Errorf("%s[%d]: entry %q contains whitespace", k, i, w))
			continue
		case k == KindPseudoSelectors && !strings.HasPrefix(w, ":"):
			errs = multierr.Append(errs, fmt.Errorf("%s[%d]: entry %q must start with ':'", k, i, w))
			continue
		}
		if !slices.Contains(out, w) {
			out = append(out, w)
		}
	}
	return out, errs
}
