// Package debug produces indented human readable dumps of classification
// results.
package debug

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const indent = "  "

// TreeWriter accumulates tree-like text, one node per line.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

// WriteTo writes accumulated tree to w.
func (tw *TreeWriter) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, tw.w.String())
	return int64(n), err
}

// Line writes formatted node at requested depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Span writes text range node: position, kind and quoted text followed by
// optional attributes.
func (tw *TreeWriter) Span(depth int, pos, kind, text string, attrs ...string) {
	tw.pad(depth)
	tw.w.WriteString(pos)
	tw.w.WriteByte(' ')
	tw.w.WriteString(kind)
	tw.w.WriteByte(' ')
	tw.w.WriteString(strconv.Quote(text))
	for _, a := range attrs {
		tw.w.WriteByte(' ')
		tw.w.WriteString(a)
	}
	tw.w.WriteByte('\n')
}

func (tw *TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(indent)
	}
}
