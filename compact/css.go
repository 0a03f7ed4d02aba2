package compact

import (
	"regexp"
	"slices"
	"strings"

	"go.uber.org/zap"
)

var defaultRegexRules = []RegexRule{
	{Pattern: ` {2,}`, Replace: " "},
	{Pattern: `\s*\n\s*`, Replace: " "},
}

// Order matters: longer padded forms must come before their shorter parts.
var defaultRules = []Rule{
	{Find: " /* ", Replace: "/*"},
	{Find: " */ ", Replace: "*/"},
	{Find: " { ", Replace: "{"},
	{Find: " {", Replace: "{"},
	{Find: "{ ", Replace: "{"},
	{Find: " } ", Replace: "}\n"},
	{Find: " }", Replace: "}\n"},
	{Find: "} ", Replace: "}\n"},
	{Find: "}", Replace: "}\n"},
	{Find: "; ", Replace: ";"},
	{Find: " : ", Replace: ":"},
	{Find: ": ", Replace: ":"},
}

// DefaultRegexRules returns whitespace collapsing rules of CSS compaction.
func DefaultRegexRules() []RegexRule {
	return slices.Clone(defaultRegexRules)
}

// DefaultRules returns literal rules of CSS compaction. Applied after
// DefaultRegexRules they squeeze whitespace around punctuation and leave
// exactly one newline after every closing brace. Result of compaction is
// stable: compacting it again changes nothing.
func DefaultRules() []Rule {
	return slices.Clone(defaultRules)
}

// NewDefault creates Rewriter with CSS compaction rules.
func NewDefault(log *zap.Logger, opts ...Option) (*Rewriter, error) {
	return New(log, DefaultRules(), DefaultRegexRules(), opts...)
}

var blockRules = []compiledRule{
	{re: regexp.MustCompile(`[ \t]*\r?\n[ \t]*`), replace: " "},
	{re: regexp.MustCompile(` {2,}`), replace: " "},
}

// CompactBlock joins lines of the block containing pos into a single line.
// Block is delimited by the nearest whitespace-only lines above and below
// the line with pos, or by text boundaries. Newline ending the block is kept
// and nothing outside of the block is touched. Returned range is occupied by
// the rewritten block in the new text. When pos is on a blank line text is
// returned unchanged with an empty range at pos.
func CompactBlock(text string, pos int) (string, Range) {
	pos = max(0, min(pos, len(text)))

	lineStart := strings.LastIndexByte(text[:pos], '\n') + 1
	lineEnd := lineEndAt(text, lineStart)
	if isBlank(text[lineStart:lineEnd]) {
		return text, Range{Start: pos, End: pos}
	}

	start := lineStart
	for start > 0 {
		prevStart := strings.LastIndexByte(text[:start-1], '\n') + 1
		if isBlank(text[prevStart : start-1]) {
			break
		}
		start = prevStart
	}
	end := lineEnd
	for end < len(text) {
		nextEnd := lineEndAt(text, end+1)
		if isBlank(text[end+1 : nextEnd]) {
			break
		}
		end = nextEnd
	}

	block := text[start:end]
	for _, rule := range blockRules {
		block = rule.re.ReplaceAllString(block, rule.replace)
	}
	return text[:start] + block + text[end:], Range{Start: start, End: start + len(block)}
}

// lineEndAt returns offset of newline terminating line which starts at
// offset, or length of text for the last line.
func lineEndAt(text string, offset int) int {
	if i := strings.IndexByte(text[offset:], '\n'); i >= 0 {
		return offset + i
	}
	return len(text)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
