package debug

import (
	"strings"
	"testing"
)

func TestTreeWriter_Empty(t *testing.T) {
	tw := NewTreeWriter()
	if tw.String() != "" {
		t.Error("Expected empty string from new TreeWriter")
	}

	var sb strings.Builder
	n, err := tw.WriteTo(&sb)
	if err != nil || n != 0 || sb.Len() != 0 {
		t.Errorf("WriteTo() = %d, %v, wrote %q", n, err, sb.String())
	}
}

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{name: "source", depth: 0, format: "%s", args: []any{"style.css"}, want: "style.css\n"},
		{name: "section", depth: 1, format: "spans", want: "  spans\n"},
		{name: "nested", depth: 2, format: "%d literals", args: []any{3}, want: "    3 literals\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Span(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		pos   string
		kind  string
		text  string
		attrs []string
		want  string
	}{
		{
			name: "keyword",
			pos:  "1:1", kind: "tag-name", text: "div",
			want: "1:1 tag-name \"div\"\n",
		},
		{
			name:  "swatch",
			depth: 2,
			pos:   "3:10", kind: "hex3", text: "#fff",
			attrs: []string{"bg=#ffffff", "fg=#000000"},
			want:  "    3:10 hex3 \"#fff\" bg=#ffffff fg=#000000\n",
		},
		{
			name:  "comment is escaped",
			depth: 1,
			pos:   "2:1", kind: "comment", text: "/* a\n\t\"b\" */",
			want:  "  2:1 comment \"/* a\\n\\t\\\"b\\\" */\"\n",
		},
		{
			name: "string with backslash",
			pos:  "1:5", kind: "string", text: `'\e'`,
			want: "1:5 string \"'\\\\e'\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Span(tt.depth, tt.pos, tt.kind, tt.text, tt.attrs...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Span() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_ClassificationDump(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "style.css")
	tw.Line(1, "spans")
	tw.Span(2, "1:1", "tag-name", "div")
	tw.Span(2, "1:7", "property-name", "color")
	tw.Line(1, "swatches")
	tw.Span(2, "1:14", "hex3", "#fff", "bg=#ffffff", "fg=#000000")

	want := `style.css
  spans
    1:1 tag-name "div"
    1:7 property-name "color"
  swatches
    1:14 hex3 "#fff" bg=#ffffff fg=#000000
`
	if got := tw.String(); got != want {
		t.Errorf("dump:\ngot:\n%s\nwant:\n%s", got, want)
	}

	var sb strings.Builder
	n, err := tw.WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if sb.String() != want || n != int64(len(want)) {
		t.Errorf("WriteTo() wrote %d bytes: %q", n, sb.String())
	}
}
