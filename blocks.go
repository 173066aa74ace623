package main

import (
	"strings"
)

// Block kinds recognized by the compiler. Names are case-significant: the
// serializer and compiler agree on these strings byte for byte.
const (
	BlockColumns         = "Columns"
	BlockCards           = "Cards"
	BlockAccordion       = "Accordion"
	BlockCarousel        = "Carousel"
	BlockMetadata        = "Metadata"
	BlockSectionMetadata = "Section Metadata"
)

// blockKinds is the closed set the compiler recognizes.
var blockKinds = map[string]bool{
	BlockColumns:         true,
	BlockCards:           true,
	BlockAccordion:       true,
	BlockCarousel:        true,
	BlockMetadata:        true,
	BlockSectionMetadata: true,
}

// Block is one block table: a kind plus ordered rows of markdown-inline
// cells.
type Block struct {
	Kind string
	Rows [][]string
}

// Section is an ordered run of markdown fragments and block tables, with an
// optional trailing Section Metadata block.
type Section struct {
	parts []string
	meta  [][2]string
}

// Document is the serializer output model: ordered sections, the last of
// which carries the trailing Metadata block.
type Document struct {
	sections []*Section
}

// NewSection appends and returns a fresh section.
func (d *Document) NewSection() *Section {
	s := &Section{}
	d.sections = append(d.sections, s)
	return s
}

// Text appends a markdown fragment (heading, paragraph, image or list) to
// the section. Empty fragments are dropped so optional source fields leave
// no gaps in the output.
func (s *Section) Text(fragment string) {
	fragment = strings.TrimRight(fragment, "\n")
	if strings.TrimSpace(fragment) == "" {
		return
	}
	s.parts = append(s.parts, fragment)
}

// Block appends a block table. Blocks with no rows are dropped.
func (s *Section) Block(kind string, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	s.parts = append(s.parts, renderBlockTable(Block{Kind: kind, Rows: rows}))
}

// Meta attaches one Section Metadata row. Rows render after every other
// part of the section, in insertion order.
func (s *Section) Meta(key, value string) {
	s.meta = append(s.meta, [2]string{key, value})
}

// Metadata appends the trailing Metadata block to the last section, the
// position downstream index tooling expects.
func (d *Document) Metadata(rows [][]string) {
	if len(d.sections) == 0 {
		d.NewSection()
	}
	d.sections[len(d.sections)-1].Block(BlockMetadata, rows)
}

// Markdown renders the document deterministically: identical documents
// always produce byte-identical output, since downstream verification diffs
// against prior runs.
func (d *Document) Markdown() string {
	rendered := make([]string, 0, len(d.sections))
	for _, s := range d.sections {
		parts := s.parts
		if len(s.meta) > 0 {
			rows := make([][]string, len(s.meta))
			for i, kv := range s.meta {
				rows[i] = []string{kv[0], kv[1]}
			}
			parts = append(append([]string{}, parts...), renderBlockTable(Block{Kind: BlockSectionMetadata, Rows: rows}))
		}
		if len(parts) == 0 {
			continue
		}
		rendered = append(rendered, strings.Join(parts, "\n\n"))
	}
	if len(rendered) == 0 {
		return ""
	}
	return strings.Join(rendered, "\n\n---\n\n") + "\n"
}

// renderBlockTable writes one block table. Column count is the widest row
// (minimum 2); short rows are padded with empty cells so the table stays
// rectangular.
func renderBlockTable(b Block) string {
	width := 2
	for _, row := range b.Rows {
		if len(row) > width {
			width = len(row)
		}
	}

	var sb strings.Builder
	header := make([]string, width)
	header[0] = b.Kind
	writeTableRow(&sb, header)

	sep := make([]string, width)
	for i := range sep {
		sep[i] = "---"
	}
	writeTableRow(&sb, sep)

	for _, row := range b.Rows {
		cells := make([]string, width)
		copy(cells, row)
		writeTableRow(&sb, cells)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func writeTableRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")
	for _, cell := range cells {
		// Cell text is single-line in the dialect.
		cell = strings.ReplaceAll(strings.TrimSpace(cell), "\n", " ")
		sb.WriteString(" ")
		sb.WriteString(cell)
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}
