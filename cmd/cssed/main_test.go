package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cssed/color"
	"cssed/state"
	"cssed/vocab"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.Reader = strings.NewReader(stdin)
	err := app.Run(state.ContextWithEnv(context.Background()), append([]string{"cssed"}, args...))
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "hsl",
			args: []string{"hsl", "ffefd5", "#fff"},
			want: "hsl(37,100%,91%)\nhsl(0,0%,100%)\n",
		},
		{
			name: "hex",
			args: []string{"hex", "hsl(0,100%,50%)", "hsl( 120 , 100% , 50% )"},
			want: "ff0000\n00ff00\n",
		},
		{
			name:  "compact",
			stdin: "div {\n  color : red;\n}",
			args:  []string{"compact"},
			want:  "div{color:red;}\n",
		},
		{
			name:  "compact block",
			stdin: "a {\n  top: 0;\n}\n\nb {\n  left: 0;\n}\n",
			args:  []string{"compact", "--block", "--pos", "0"},
			want:  "a { top: 0; }\n\nb {\n  left: 0;\n}\n",
		},
		{
			name:  "compact range",
			stdin: "a { top: 0; }\nb  {  left: 0; }\n",
			args:  []string{"compact", "--start", "14"},
			want:  "a { top: 0; }\nb{left:0;}\n",
		},
		{
			name:  "classify",
			stdin: "foo { color: red; }",
			args:  []string{"classify"},
			want:  "1:7\tproperty-name\t\"color\"\n1:14\tcolor-name\t\"red\"\tbg=#ff0000 fg=#ffffff\n",
		},
		{
			name:  "classify tree",
			stdin: "a {\n  color: #fff;\n}",
			args:  []string{"classify", "--tree"},
			want:  "-\n  spans\n    1:1 tag-name \"a\"\n    2:3 property-name \"color\"\n  swatches\n    2:10 hex3 \"#fff\" bg=#ffffff fg=#000000\n",
		},
		{
			name:  "complete accept",
			stdin: "a { colo }",
			args:  []string{"complete", "--pos", "8", "--accept", "color"},
			want:  "a { color }",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("run(%v) error = %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("run(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestComplete(t *testing.T) {
	got, err := run(t, "a { colo", "complete", "--pos", "8")
	if err != nil {
		t.Fatalf("complete error = %v", err)
	}
	if first, _, _ := strings.Cut(got, "\n"); first != "color" {
		t.Errorf("best candidate = %q, want color", first)
	}
}

func TestKeywords(t *testing.T) {
	got, err := run(t, "", "keywords", "--kind", "units")
	if err != nil {
		t.Fatalf("keywords error = %v", err)
	}
	if !strings.Contains(got, "\npx\n") {
		t.Errorf("units do not contain px: %q", got)
	}

	all, err := run(t, "", "keywords")
	if err != nil {
		t.Fatalf("keywords error = %v", err)
	}
	if len(strings.Split(all, "\n")) <= len(strings.Split(got, "\n")) {
		t.Error("expected all keywords to include more than units")
	}

	if _, err := run(t, "", "keywords", "--kind", "colours"); !errors.Is(err, vocab.ErrInvalidKind) {
		t.Errorf("unknown vocabulary kind error = %v, want ErrInvalidKind", err)
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.css")
	dst := filepath.Join(dir, "out.css")
	if err := os.WriteFile(src, []byte("p {\n  margin: 0;\n}\n"), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	if _, err := run(t, "", "compact", src, dst); err != nil {
		t.Fatalf("compact error = %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("failed to read destination: %v", err)
	}
	if string(data) != "p{margin:0;}\n" {
		t.Errorf("compacted file = %q", data)
	}

	if _, err := run(t, "", "compact", filepath.Join(dir, "absent.css")); err == nil {
		t.Error("expected error for absent source")
	}
}

func TestConfiguration(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cssed.yaml")
	if err := os.WriteFile(cfgPath, []byte("version: 1\ncolor:\n  out_of_range: fail\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := run(t, "", "--config", cfgPath, "hex", "hsl(0,150%,50%)"); !errors.Is(err, color.ErrOutOfRange) {
		t.Errorf("hex with fail policy error = %v, want ErrOutOfRange", err)
	}
	got, err := run(t, "", "hex", "hsl(0,150%,50%)")
	if err != nil || got != "ff0000\n" {
		t.Errorf("hex with clamp policy = %q, %v", got, err)
	}

	got, err = run(t, "", "--config", cfgPath, "dumpconfig")
	if err != nil {
		t.Fatalf("dumpconfig error = %v", err)
	}
	if !strings.Contains(got, "out_of_range: fail") {
		t.Errorf("actual configuration does not reflect file: %q", got)
	}

	got, err = run(t, "", "dumpconfig", "--default")
	if err != nil {
		t.Fatalf("dumpconfig --default error = %v", err)
	}
	if !strings.Contains(got, "out_of_range: clamp") {
		t.Errorf("default configuration = %q", got)
	}
}

func TestDebugReport(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cssed.yaml")
	report := filepath.Join(dir, "report.zip")
	if err := os.WriteFile(cfgPath, []byte("version: 1\nlogging:\n  file:\n    level: none\n    destination: "+
		filepath.Join(dir, "cssed.log")+"\nreporting:\n  destination: "+report+"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := run(t, "a{}", "--debug", "--config", cfgPath, "compact"); err != nil {
		t.Fatalf("compact --debug error = %v", err)
	}
	if fi, err := os.Stat(report); err != nil || fi.Size() == 0 {
		t.Errorf("debug report was not created: %v", err)
	}
}

func TestErrors(t *testing.T) {
	if _, err := run(t, "", "hsl", "zz"); !errors.Is(err, color.ErrInvalidFormat) {
		t.Errorf("hsl zz error = %v, want ErrInvalidFormat", err)
	}
	if _, err := run(t, "", "hsl"); err == nil {
		t.Error("hsl without arguments expected error")
	}
	if _, err := run(t, "", "hex", "rgb(1,2,3)"); !errors.Is(err, color.ErrInvalidFormat) {
		t.Errorf("hex rgb() error = %v, want ErrInvalidFormat", err)
	}
	if _, err := run(t, "zzz", "complete", "--pos", "3"); err == nil {
		t.Error("complete without candidates expected error")
	}
}
