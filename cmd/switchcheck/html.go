// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/patternlint/patternlint/internal/switchdesc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown renders GitHub-flavoured tables.
var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>switchcheck report</title>
<style>
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 2px 8px; text-align: left; }
</style>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// writeHTML writes a report with one table of diagnostics per file.
// The report is composed in Markdown and converted to HTML.
func writeHTML(w io.Writer, files []*switchdesc.File, diags []Diagnostic) error {
	byFile := make(map[string][]Diagnostic)
	for _, d := range diags {
		byFile[d.File] = append(byFile[d.File], d)
	}

	var md bytes.Buffer
	fmt.Fprintf(&md, "# Switch check\n\n")
	fmt.Fprintf(&md, "%d diagnostics in %d files.\n\n", len(diags), len(files))
	for _, f := range files {
		fmt.Fprintf(&md, "## %s\n\n", mdText.Replace(f.Name))
		ds := byFile[f.Name]
		if len(ds) == 0 {
			fmt.Fprintf(&md, "No diagnostics in %d switches.\n\n", len(f.Switches))
			continue
		}
		md.WriteString("| Line | Switch | Label | Kind | Message |\n")
		md.WriteString("|---:|---|---|---|---|\n")
		for _, d := range ds {
			label := ""
			if d.Label != "" {
				label = "`" + mdCode.Replace(d.Label) + "`"
			}
			fmt.Fprintf(&md, "| %d | %s | %s | %s | %s |\n",
				d.Line, mdText.Replace(d.Switch), label, d.Kind, mdText.Replace(d.Message))
		}
		md.WriteString("\n")
	}

	var out bytes.Buffer
	out.WriteString(htmlHeader)
	if err := markdown.Convert(md.Bytes(), &out); err != nil {
		return err
	}
	out.WriteString(htmlFooter)
	_, err := w.Write(out.Bytes())
	return err
}

var (
	mdText = strings.NewReplacer(
		`\`, `\\`,
		"`", "\\`",
		`*`, `\*`,
		`_`, `\_`,
		`<`, `\<`,
		`[`, `\[`,
		`|`, `\|`,
	)
	// Within a code span only the table delimiter needs escaping.
	mdCode = strings.NewReplacer(`|`, `\|`)
)
