package syntax

import (
	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"
)

// Completion describes partial word at cursor and candidates to replace it.
type Completion struct {
	Start, End int // partial word range, End is cursor offset
	Partial    string
	Candidates []string
}

// PartialWord returns range of the identifier-like run which ends at offset.
// Offset is clamped to text bounds and moved back to a rune start.
func PartialWord(text string, offset int) (int, int) {
	offset = max(0, min(offset, len(text)))
	for offset > 0 && offset < len(text) && text[offset]&0xC0 == 0x80 {
		offset--
	}
	start := offset
	for start > 0 && isSymbolByte(text[start-1]) {
		start--
	}
	return start, offset
}

// Complete offers keywords from all vocabularies for the partial word at
// offset. With empty partial word every keyword is offered in natural order,
// otherwise candidates are fuzzy-matched and ranked best first.
func (c *Classifier) Complete(text string, offset int) Completion {
	start, end := PartialWord(text, offset)
	comp := Completion{Start: start, End: end, Partial: text[start:end]}

	keywords := c.set.AllKeywords()
	if comp.Partial == "" {
		comp.Candidates = keywords
		return comp
	}
	for _, m := range fuzzy.Find(comp.Partial, keywords) {
		comp.Candidates = append(comp.Candidates, m.Str)
	}
	c.log.Debug("Completion",
		zap.String("partial", comp.Partial),
		zap.Int("candidates", len(comp.Candidates)))
	return comp
}

// Accept replaces partial word with choice and returns new text together with
// cursor offset right after inserted keyword.
func Accept(text string, comp Completion, choice string) (string, int) {
	start := max(0, min(comp.Start, len(text)))
	end := max(start, min(comp.End, len(text)))
	return text[:start] + choice + text[end:], start + len(choice)
}
