package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName   = "Report"
	rowsPerPage = 30
)

// SheetSink is the page emitter: an XLSX workbook with labels in column A,
// values in column B and a page break every rowsPerPage rows.
type SheetSink struct {
	w      io.Writer
	file   *excelize.File
	row    int
	err    error
	styles map[string]int
}

// NewSheetSink returns a SheetSink writing the workbook to w on Close.
func NewSheetSink(w io.Writer) *SheetSink {
	s := &SheetSink{w: w, file: excelize.NewFile(), styles: map[string]int{}}
	s.setup()
	return s
}

func (s *SheetSink) setup() {
	if s.err = s.file.SetSheetName(s.file.GetSheetName(0), sheetName); s.err != nil {
		return
	}
	if s.err = s.file.SetColWidth(sheetName, "A", "A", 36); s.err != nil {
		return
	}
	if s.err = s.file.SetColWidth(sheetName, "B", "B", 22); s.err != nil {
		return
	}
	if s.err = s.file.SetHeaderFooter(sheetName, &excelize.HeaderFooterOptions{
		OddFooter: "&CPage &P of &N",
	}); s.err != nil {
		return
	}

	for name, style := range map[string]*excelize.Style{
		"title":   {Font: &excelize.Font{Bold: true, Size: 14}},
		"section": {Font: &excelize.Font{Bold: true, Size: 12}},
		"group":   {Font: &excelize.Font{Italic: true}},
		"footer":  {Font: &excelize.Font{Italic: true, Color: "666666"}},
	} {
		id, err := s.file.NewStyle(style)
		if err != nil {
			s.err = fmt.Errorf("create %s style: %w", name, err)
			return
		}
		s.styles[name] = id
	}
}

func (s *SheetSink) next() string {
	s.row++
	if s.err == nil && s.row > 1 && (s.row-1)%rowsPerPage == 0 {
		s.err = s.file.InsertPageBreak(sheetName, fmt.Sprintf("A%d", s.row))
	}
	return fmt.Sprintf("A%d", s.row)
}

func (s *SheetSink) styled(text, style string) {
	cell := s.next()
	if s.err != nil {
		return
	}
	if s.err = s.file.SetCellValue(sheetName, cell, text); s.err != nil {
		return
	}
	s.err = s.file.SetCellStyle(sheetName, cell, cell, s.styles[style])
}

func (s *SheetSink) Title(text string) {
	s.styled(text, "title")
}

func (s *SheetSink) Section(name string) {
	s.next()
	s.styled(name, "section")
}

func (s *SheetSink) Group(name string) {
	s.styled(name, "group")
}

func (s *SheetSink) Field(label, value string) {
	cell := s.next()
	if s.err != nil {
		return
	}
	if s.err = s.file.SetCellValue(sheetName, cell, label); s.err != nil {
		return
	}
	s.err = s.file.SetCellValue(sheetName, fmt.Sprintf("B%d", s.row), value)
}

func (s *SheetSink) Footer(text string) {
	s.next()
	s.styled(text, "footer")
}

func (s *SheetSink) Close() error {
	defer s.file.Close()

	if s.err != nil {
		return s.err
	}
	if _, err := s.file.WriteTo(s.w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
