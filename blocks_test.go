package main

import (
	"strings"
	"testing"
)

func TestBlockTableShape(t *testing.T) {
	doc := &Document{}
	doc.NewSection().Block(BlockCards, [][]string{
		{"**A** desc-a"},
		{"**B** desc-b"},
	})

	got := doc.Markdown()
	want := "| Cards |  |\n| --- | --- |\n| **A** desc-a |  |\n| **B** desc-b |  |\n"
	if got != want {
		t.Errorf("Markdown() = %q, want %q", got, want)
	}
}

func TestBlockTableWideRows(t *testing.T) {
	doc := &Document{}
	doc.NewSection().Block(BlockColumns, [][]string{
		{"a", "b", "c"},
		{"d"},
	})

	got := doc.Markdown()
	want := "| Columns |  |  |\n| --- | --- | --- |\n| a | b | c |\n| d |  |  |\n"
	if got != want {
		t.Errorf("Markdown() = %q, want %q", got, want)
	}
}

func TestDocumentSectionDividers(t *testing.T) {
	doc := &Document{}
	doc.NewSection().Text("# Title")
	doc.NewSection().Text("Body text.")

	got := doc.Markdown()
	want := "# Title\n\n---\n\nBody text.\n"
	if got != want {
		t.Errorf("Markdown() = %q, want %q", got, want)
	}
}

func TestDocumentEmptySectionsDropped(t *testing.T) {
	doc := &Document{}
	doc.NewSection().Text("# Title")
	doc.NewSection() // Nothing added: no divider should appear.
	doc.NewSection().Text("End.")

	got := doc.Markdown()
	if strings.Count(got, "---") != 1 {
		t.Errorf("Markdown() = %q, want exactly one divider", got)
	}
}

func TestSectionMetadataTrailsSection(t *testing.T) {
	doc := &Document{}
	s := doc.NewSection()
	s.Meta("style", "dark")
	s.Text("# Hero")

	got := doc.Markdown()
	want := "# Hero\n\n| Section Metadata |  |\n| --- | --- |\n| style | dark |\n"
	if got != want {
		t.Errorf("Markdown() = %q, want %q", got, want)
	}
}

func TestMetadataAppendsToLastSection(t *testing.T) {
	doc := &Document{}
	doc.NewSection().Text("# Title")
	doc.NewSection().Text("Body.")
	doc.Metadata([][]string{{"title", "Foo"}, {"template", "case-study"}})

	got := doc.Markdown()
	if strings.Count(got, "---\n") != 1 {
		t.Errorf("Metadata block should not open a new section:\n%s", got)
	}
	metaIdx := strings.Index(got, "| Metadata |")
	bodyIdx := strings.Index(got, "Body.")
	if metaIdx == -1 || metaIdx < bodyIdx {
		t.Errorf("Metadata block should trail the last section:\n%s", got)
	}
}

func TestMarkdownDeterministic(t *testing.T) {
	build := func() string {
		doc := &Document{}
		s := doc.NewSection()
		s.Text("![hero](/img.png)")
		s.Text("# Page")
		s.Block(BlockColumns, [][]string{{"left", "right"}})
		s.Meta("style", "dark")
		doc.NewSection().Block(BlockAccordion, [][]string{{"Q1", "A1"}, {"Q2", "A2"}})
		doc.Metadata([][]string{{"title", "Page"}, {"template", "solutions-page"}})
		return doc.Markdown()
	}

	first := build()
	second := build()
	if first != second {
		t.Error("Markdown() is not byte-deterministic across identical builds")
	}
	if first == "" {
		t.Error("Markdown() produced empty output")
	}
}

func TestCellNewlinesFlattened(t *testing.T) {
	doc := &Document{}
	doc.NewSection().Block(BlockColumns, [][]string{{"- a\n- b", "right"}})

	got := doc.Markdown()
	if !strings.Contains(got, "| - a - b | right |") {
		t.Errorf("Markdown() = %q, cell newline not flattened", got)
	}
}
