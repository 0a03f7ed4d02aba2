package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	parse "github.com/tdewolff/parse/v2"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssed/color"
	"cssed/compact"
	"cssed/config"
	"cssed/state"
	"cssed/syntax"
	"cssed/utils/debug"
	"cssed/vocab"
)

// prepared returns environment with editing cores built.
func prepared(ctx context.Context) (*state.LocalEnv, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)
	if env.Classifier == nil {
		if err := env.Prepare(); err != nil {
			return nil, err
		}
	}
	return env, nil
}

// readSource loads CSS text from file or from STDIN when name is empty or
// "-". Input is stored in debug report if one is requested.
func readSource(env *state.LocalEnv, cmd *cli.Command, name string) (string, error) {
	if len(name) == 0 || name == "-" {
		data, err := io.ReadAll(cmd.Root().Reader)
		if err != nil {
			return "", fmt.Errorf("unable to read STDIN: %w", err)
		}
		env.Rpt.StoreData("input/stdin.css", data)
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("unable to read source: %w", err)
	}
	if err := env.Rpt.StoreCopy("input/"+filepath.Base(name), name); err != nil {
		env.Log.Warn("Unable to store source in debug report", zap.String("source", name), zap.Error(err))
	}
	return string(data), nil
}

// writeResult writes data to file or to command output when name is empty.
func writeResult(env *state.LocalEnv, cmd *cli.Command, name, data string) error {
	if len(name) == 0 {
		_, err := io.WriteString(cmd.Root().Writer, data)
		return err
	}
	if err := os.WriteFile(name, []byte(data), 0644); err != nil {
		return fmt.Errorf("unable to write destination file '%s': %w", name, err)
	}
	env.Log.Info("Result written", zap.String("file", name), zap.Int("bytes", len(data)))
	return nil
}

func runCompact(ctx context.Context, cmd *cli.Command) error {
	env, err := prepared(ctx)
	if err != nil {
		return err
	}
	log := env.Log.Named("compact")

	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	text, err := readSource(env, cmd, cmd.Args().Get(0))
	if err != nil {
		return err
	}

	var (
		out string
		rng compact.Range
	)
	switch start, end := cmd.Int("start"), cmd.Int("end"); {
	case cmd.Bool("block"):
		out, rng = compact.CompactBlock(text, cmd.Int("pos"))
	case start >= 0 || end >= 0:
		if end < 0 {
			end = len(text)
		}
		if out, rng, err = env.Rewriter.CompactRange(text, compact.Range{Start: max(start, 0), End: end}); err != nil {
			return err
		}
	default:
		if out, err = env.Rewriter.Compact(text); err != nil {
			return err
		}
		rng = compact.Range{Start: 0, End: len(out)}
	}
	log.Debug("Compacted", zap.Int("before", len(text)), zap.Int("after", len(out)), zap.Int("start", rng.Start), zap.Int("end", rng.End))

	return writeResult(env, cmd, cmd.Args().Get(1), out)
}

func runHexToHSL(ctx context.Context, cmd *cli.Command) error {
	if _, err := prepared(ctx); err != nil {
		return err
	}
	if cmd.Args().Len() == 0 {
		return errors.New("no colors have been specified")
	}
	var sb strings.Builder
	for _, arg := range cmd.Args().Slice() {
		hex := color.ExpandHex3(strings.TrimSpace(arg))
		hsl, err := color.HexToHSL(hex)
		if err != nil {
			return err
		}
		sb.WriteString(hsl)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(cmd.Root().Writer, sb.String())
	return err
}

func runHSLToHex(ctx context.Context, cmd *cli.Command) error {
	env, err := prepared(ctx)
	if err != nil {
		return err
	}
	if cmd.Args().Len() == 0 {
		return errors.New("no colors have been specified")
	}
	var sb strings.Builder
	for _, arg := range cmd.Args().Slice() {
		hsl, err := env.Converter.ParseHSL(arg)
		if err != nil {
			return err
		}
		sb.WriteString(color.HSLToRGB(hsl).Hex())
		sb.WriteByte('\n')
	}
	_, err = io.WriteString(cmd.Root().Writer, sb.String())
	return err
}

func runClassify(ctx context.Context, cmd *cli.Command) error {
	env, err := prepared(ctx)
	if err != nil {
		return err
	}
	name := cmd.Args().Get(0)
	text, err := readSource(env, cmd, name)
	if err != nil {
		return err
	}
	if len(name) == 0 {
		name = "-"
	}

	pos := newPositioner(text)
	if !cmd.Bool("tree") {
		var sb strings.Builder
		for s := range env.Classifier.Classify(text) {
			fmt.Fprintf(&sb, "%s\t%s\t%q%s\n", pos.At(s.Start), s.Category, s.Text, namedSwatch(s))
		}
		for lit := range env.Classifier.Swatches(text) {
			fmt.Fprintf(&sb, "%s\t%s\t%q\tbg=%s fg=%s\n", pos.At(lit.Start), lit.Kind, lit.Text, lit.Background, lit.Foreground)
		}
		_, err = io.WriteString(cmd.Root().Writer, sb.String())
		return err
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "%s", name)
	tw.Line(1, "spans")
	for s := range env.Classifier.Classify(text) {
		if attr := strings.TrimSpace(namedSwatch(s)); len(attr) > 0 {
			tw.Span(2, pos.At(s.Start), s.Category.String(), s.Text, attr)
			continue
		}
		tw.Span(2, pos.At(s.Start), s.Category.String(), s.Text)
	}
	tw.Line(1, "swatches")
	for lit := range env.Classifier.Swatches(text) {
		tw.Span(2, pos.At(lit.Start), lit.Kind.String(), lit.Text, "bg="+lit.Background.String(), "fg="+lit.Foreground.String())
	}
	_, err = tw.WriteTo(cmd.Root().Writer)
	return err
}

// namedSwatch describes color of color-name span.
func namedSwatch(s syntax.Span) string {
	if s.Category != syntax.CategoryColorName {
		return ""
	}
	c, ok := color.Named(s.Text)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\tbg=%s fg=%s", c, c.Contrast())
}

func runComplete(ctx context.Context, cmd *cli.Command) error {
	env, err := prepared(ctx)
	if err != nil {
		return err
	}
	text, err := readSource(env, cmd, cmd.Args().Get(0))
	if err != nil {
		return err
	}

	offset := cmd.Int("pos")
	comp := env.Classifier.Complete(text, offset)
	env.Log.Debug("Completing", zap.String("at", newPositioner(text).At(comp.End)), zap.String("partial", comp.Partial))

	if choice := cmd.String("accept"); len(choice) > 0 {
		out, cursor := syntax.Accept(text, comp, choice)
		env.Log.Debug("Keyword accepted", zap.String("keyword", choice), zap.Int("cursor", cursor))
		return writeResult(env, cmd, "", out)
	}
	if len(comp.Candidates) == 0 {
		return fmt.Errorf("no keywords match %q", comp.Partial)
	}
	return writeResult(env, cmd, "", strings.Join(comp.Candidates, "\n")+"\n")
}

func runKeywords(ctx context.Context, cmd *cli.Command) error {
	env, err := prepared(ctx)
	if err != nil {
		return err
	}

	words := env.Vocab.AllKeywords()
	if name := cmd.String("kind"); len(name) > 0 {
		kind, err := vocab.ParseKind(name)
		if err != nil {
			return fmt.Errorf("unknown vocabulary, expected one of: %s: %w", strings.Join(vocab.KindNames(), ", "), err)
		}
		words = env.Vocab.Get(kind).Words()
	}
	return writeResult(env, cmd, "", strings.Join(words, "\n")+"\n")
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var (
		err  error
		data []byte
		kind string
	)
	if cmd.Bool("default") {
		kind = "default"
		data, err = config.Prepare()
	} else {
		kind = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	env.Log.Debug("Outputting configuration", zap.String("state", kind))
	return writeResult(env, cmd, cmd.Args().Get(0), string(data))
}

// positioner converts byte offsets to "line:col" for ascending offsets
// without rescanning text from the beginning.
type positioner struct {
	text      string
	lineStart int
	line      int
}

func newPositioner(text string) *positioner {
	return &positioner{text: text, line: 1}
}

func (p *positioner) At(offset int) string {
	offset = max(0, min(offset, len(p.text)))
	if offset < p.lineStart {
		p.lineStart, p.line = 0, 1
	}
	line, col, _ := parse.Position(strings.NewReader(p.text[p.lineStart:]), offset-p.lineStart)
	line += p.line - 1

	// column counts runes since the line start
	start := offset
	for range col - 1 {
		_, w := utf8.DecodeLastRuneInString(p.text[:start])
		start -= w
	}
	p.lineStart, p.line = start, line
	return fmt.Sprintf("%d:%d", line, col)
}
