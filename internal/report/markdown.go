package report

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
)

// MarkdownSink builds the report as Markdown and converts it to a standalone
// HTML page on Close.
type MarkdownSink struct {
	w     io.Writer
	md    bytes.Buffer
	title string
}

// NewMarkdownSink returns a MarkdownSink writing HTML to w.
func NewMarkdownSink(w io.Writer) *MarkdownSink {
	return &MarkdownSink{w: w}
}

func (s *MarkdownSink) Title(text string) {
	s.title = text
	fmt.Fprintf(&s.md, "# %s\n\n", text)
}

func (s *MarkdownSink) Section(name string) {
	fmt.Fprintf(&s.md, "\n## %s\n\n", name)
}

func (s *MarkdownSink) Group(name string) {
	fmt.Fprintf(&s.md, "\n### %s\n\n", name)
}

func (s *MarkdownSink) Field(label, value string) {
	fmt.Fprintf(&s.md, "- **%s:** %s\n", label, value)
}

func (s *MarkdownSink) Footer(text string) {
	fmt.Fprintf(&s.md, "\n---\n\n%s\n", text)
}

// Markdown returns the source accumulated so far.
func (s *MarkdownSink) Markdown() string {
	return s.md.String()
}

func (s *MarkdownSink) Close() error {
	var body bytes.Buffer
	if err := goldmark.Convert(s.md.Bytes(), &body); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}

	_, err := fmt.Fprintf(s.w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`, html.EscapeString(s.title), body.String())
	return err
}
