// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/patternlint/patternlint/internal/feature"
	"github.com/patternlint/patternlint/internal/switchdesc"
	"github.com/patternlint/patternlint/pattern"
	"github.com/patternlint/patternlint/switchcheck"
	"golang.org/x/sync/errgroup"
)

//go:embed doc.go
var doc string

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// A command holds the state of one invocation.
type command struct {
	stdout io.Writer
	log    *log.Logger

	jsonFlag    bool
	formatFlag  string
	htmlFlag    bool
	releaseFlag string
	colorFlag   string
	kindFlag    string
	verboseFlag bool

	kinds map[switchcheck.Kind]bool // from -kind; nil means all
}

// run executes the command with the given arguments and returns its
// exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := &command{
		stdout: stdout,
		log:    log.New(stderr, "switchcheck: ", 0), // no time prefix
	}
	fs := flag.NewFlagSet("switchcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cmd.jsonFlag, "json", false, "output JSON records")
	fs.StringVar(&cmd.formatFlag, "f", "", "format output records using template")
	fs.BoolVar(&cmd.htmlFlag, "html", false, "output an HTML report")
	fs.StringVar(&cmd.releaseFlag, "release", "", "Java language level of switches that do not name one (default: latest)")
	fs.StringVar(&cmd.colorFlag, "color", "auto", "highlight positions: auto, always or never")
	fs.StringVar(&cmd.kindFlag, "kind", "", "report only diagnostics of these comma-separated kinds (e.g. Dominated,NonExhaustive)")
	fs.BoolVar(&cmd.verboseFlag, "v", false, "log progress to stderr")
	fs.Usage = func() {
		// Extract the content of the /* ... */ comment in doc.go.
		_, after, _ := strings.Cut(doc, "/*\n")
		doc, _, _ := strings.Cut(after, "*/")
		io.WriteString(fs.Output(), doc+`
Flags:

`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	if err := cmd.checkFlags(); err != nil {
		cmd.log.Print(err)
		return 2
	}

	files, err := cmd.load(ctx, fs.Args())
	if err != nil {
		cmd.log.Print(err)
		return 1
	}
	diags, err := cmd.check(ctx, files)
	if err != nil {
		cmd.log.Print(err)
		return 1
	}
	if err := cmd.print(files, diags); err != nil {
		cmd.log.Print(err)
		return 1
	}
	if len(diags) > 0 {
		return 1
	}
	return 0
}

// checkFlags rejects bad output options early.
func (cmd *command) checkFlags() error {
	outputs := 0
	for _, set := range []bool{cmd.jsonFlag, cmd.formatFlag != "", cmd.htmlFlag} {
		if set {
			outputs++
		}
	}
	if outputs > 1 {
		return errors.New("you cannot specify more than one of -f=template, -json and -html")
	}
	if cmd.formatFlag != "" {
		if _, err := template.New("switchcheck").Parse(cmd.formatFlag); err != nil {
			return fmt.Errorf("invalid -f: %v", err)
		}
	}
	if cmd.releaseFlag != "" && !feature.Valid(cmd.releaseFlag) {
		return fmt.Errorf("invalid -release %q: want a Java version such as 17 or 23-preview", cmd.releaseFlag)
	}
	switch cmd.colorFlag {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid -color %q: want auto, always or never", cmd.colorFlag)
	}
	if cmd.kindFlag != "" {
		cmd.kinds = make(map[switchcheck.Kind]bool)
		for _, name := range strings.Split(cmd.kindFlag, ",") {
			var k switchcheck.Kind
			if err := k.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
				return fmt.Errorf("invalid -kind: %v", err)
			}
			cmd.kinds[k] = true
		}
	}
	return nil
}

// load reads and decodes the named description files in parallel.
func (cmd *command) load(ctx context.Context, names []string) ([]*switchdesc.File, error) {
	files := make([]*switchdesc.File, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(name)
			if err != nil {
				return err
			}
			f, err := switchdesc.Decode(name, content)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// A Diagnostic is the output record of one diagnostic.
// Keep in sync with the documentation in doc.go.
type Diagnostic struct {
	File     string
	Line     int
	Switch   string
	Label    string           `json:",omitempty"`
	Kind     switchcheck.Kind // marshalled by name
	Message  string
	Found    string `json:",omitempty"`
	Required string `json:",omitempty"`
}

// check runs the checker over every switch of every file and returns
// the diagnostics in file order.
func (cmd *command) check(ctx context.Context, files []*switchdesc.File) ([]Diagnostic, error) {
	checker := &switchcheck.Checker{Release: cmd.releaseFlag}
	if cmd.verboseFlag {
		checker.Logger = slog.New(slog.NewTextHandler(cmd.log.Writer(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var (
		switches []*pattern.Switch
		owners   []*switchdesc.Switch
		names    []string
	)
	for _, f := range files {
		for _, sw := range f.Switches {
			switches = append(switches, sw.Switch)
			owners = append(owners, sw)
			names = append(names, f.Name)
		}
	}
	results, err := checker.CheckAll(ctx, switches)
	if err != nil {
		return nil, err
	}

	var diags []Diagnostic
	for i, res := range results {
		sw := owners[i]
		for _, d := range res.Diagnostics {
			if cmd.kinds != nil && !cmd.kinds[d.Kind] {
				continue
			}
			out := Diagnostic{
				File:     names[i],
				Line:     sw.LineOf(d.Label),
				Switch:   sw.Name,
				Kind:     d.Kind,
				Message:  d.Message,
				Found:    d.Found,
				Required: d.Required,
			}
			if d.Label != switchcheck.SwitchLevel {
				out.Label = sw.Labels[d.Label].String()
			}
			diags = append(diags, out)
		}
	}
	return diags, nil
}

func (cmd *command) print(files []*switchdesc.File, diags []Diagnostic) error {
	switch {
	case cmd.jsonFlag:
		if diags == nil {
			diags = []Diagnostic{}
		}
		out, err := json.MarshalIndent(diags, "", "\t")
		if err != nil {
			return fmt.Errorf("internal error: %v", err)
		}
		out = append(out, '\n')
		_, err = cmd.stdout.Write(out)
		return err

	case cmd.formatFlag != "":
		// Parse can't fail: we checked it earlier.
		tmpl := template.Must(template.New("switchcheck").Parse(cmd.formatFlag))
		for _, d := range diags {
			var buf bytes.Buffer
			if err := tmpl.Execute(&buf, d); err != nil {
				return err
			}
			if buf.Len() == 0 {
				continue // filtered out by the template
			}
			if buf.Bytes()[buf.Len()-1] != '\n' {
				buf.WriteByte('\n')
			}
			if _, err := cmd.stdout.Write(buf.Bytes()); err != nil {
				return err
			}
		}
		return nil

	case cmd.htmlFlag:
		return writeHTML(cmd.stdout, files, diags)
	}
	return writeText(cmd.stdout, diags, cmd.highlight())
}

// highlight reports whether text output should use terminal escapes.
func (cmd *command) highlight() bool {
	switch cmd.colorFlag {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := cmd.stdout.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

const (
	bold  = "\x1b[1m"
	reset = "\x1b[0m"
)

// writeText prints one line per diagnostic, the messages aligned in
// a column. Widths are measured in terminal cells, so labels with
// wide characters do not break the alignment.
func writeText(w io.Writer, diags []Diagnostic, highlight bool) error {
	prefixes := make([]string, len(diags))
	width := 0
	for i, d := range diags {
		p := fmt.Sprintf("%s:%d: %s:", d.File, d.Line, d.Switch)
		if d.Label != "" {
			p += fmt.Sprintf(" case '%s':", d.Label)
		}
		prefixes[i] = p
		width = max(width, runewidth.StringWidth(p))
	}
	var buf bytes.Buffer
	for i, d := range diags {
		p := prefixes[i]
		pad := strings.Repeat(" ", width-runewidth.StringWidth(p)+1)
		if highlight {
			p = bold + p + reset
		}
		fmt.Fprintf(&buf, "%s%s%s\n", p, pad, d.Message)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
