package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TextSink is the line emitter: a plain-text report, one element per line.
type TextSink struct {
	w       *bufio.Writer
	err     error
	inGroup bool
}

// NewTextSink returns a TextSink writing to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: bufio.NewWriter(w)}
}

func (s *TextSink) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func (s *TextSink) Title(text string) {
	s.printf("%s\n%s\n", text, strings.Repeat("=", len(text)))
}

func (s *TextSink) Section(name string) {
	s.inGroup = false
	s.printf("\n%s\n%s\n", name, strings.Repeat("-", len(name)))
}

func (s *TextSink) Group(name string) {
	s.inGroup = true
	s.printf("  %s\n", name)
}

func (s *TextSink) Field(label, value string) {
	indent := "  "
	if s.inGroup {
		indent = "    "
	}
	s.printf("%s%s: %s\n", indent, label, value)
}

func (s *TextSink) Footer(text string) {
	s.printf("\n%s\n", text)
}

func (s *TextSink) Close() error {
	if s.err != nil {
		return s.err
	}
	return s.w.Flush()
}
