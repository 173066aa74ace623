package main

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing fixture HTML: %v", err)
	}
	return doc
}

func TestInlineMarkdown(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"bold", `<p>a <strong>b</strong> c</p>`, "a **b** c"},
		{"bold via b tag", `<p><b>x</b> y</p>`, "**x** y"},
		{"italic", `<p>a <em>b</em> c</p>`, "a *b* c"},
		{"anchor", `<p>see <a href="/docs">the docs</a></p>`, "see [the docs](/docs)"},
		{"anchor without href", `<p>see <a>nothing</a></p>`, "see nothing"},
		{"line break", `<p>a<br>b</p>`, "a\nb"},
		{"entities", `<p>salt &amp; pepper &ndash; fresh</p>`, "salt & pepper – fresh"},
		{"nbsp", "<p>a b</p>", "a b"},
		{"unknown tags stripped", `<p><span class="x">kept</span> <sup>1</sup></p>`, "kept 1"},
		{"script dropped", `<p>text<script>alert(1)</script></p>`, "text"},
		{"empty strong dropped", `<p>a <strong> </strong>b</p>`, "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustDoc(t, tt.html)
			got := InlineMarkdown(doc.Find("p"))
			if got != tt.want {
				t.Errorf("InlineMarkdown(%q) = %q, want %q", tt.html, got, tt.want)
			}
		})
	}
}

func TestInlineMarkdownIdempotent(t *testing.T) {
	doc := mustDoc(t, `<p>see <strong>bold</strong> and <a href="/x">link</a> &amp; more</p>`)
	first := InlineMarkdown(doc.Find("p"))

	// Re-running the conversion over its own output must not change it.
	doc2 := mustDoc(t, "<p>"+first+"</p>")
	second := InlineMarkdown(doc2.Find("p"))
	if second != first {
		t.Errorf("conversion not idempotent: %q then %q", first, second)
	}
}

func TestInlineMarkdownPreservesOrder(t *testing.T) {
	doc := mustDoc(t, `<p>one <em>two</em> three <strong>four</strong> five</p>`)
	got := InlineMarkdown(doc.Find("p"))
	want := "one *two* three **four** five"
	if got != want {
		t.Errorf("InlineMarkdown() = %q, want %q", got, want)
	}
}

func TestDecodeEntities(t *testing.T) {
	got := DecodeEntities("&lt;b&gt; &amp; &nbsp;&rsquo;")
	want := "<b> &  ’"
	if got != want {
		t.Errorf("DecodeEntities() = %q, want %q", got, want)
	}
}
