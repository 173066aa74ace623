package main

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Fixed entity table shared with the markdown dialect. The net/html parser
// already decodes entities in text nodes, so applying this to parsed text is
// a no-op; it exists for raw-text inputs and keeps the conversion idempotent.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&nbsp;", " ",
	"&#160;", " ",
	" ", " ",
	"&ldquo;", "“",
	"&rdquo;", "”",
	"&lsquo;", "‘",
	"&rsquo;", "’",
	"&ndash;", "–",
	"&mdash;", "—",
)

var spaceRun = regexp.MustCompile(`[ \t]+`)

// DecodeEntities applies the fixed entity table and nothing else.
func DecodeEntities(s string) string {
	return entityReplacer.Replace(s)
}

// InlineMarkdown converts the contents of a selection to markdown inline
// text: bold/italic markers, anchors to markdown links, <br> to newlines,
// entities decoded, every other tag stripped. Text order is preserved and
// the conversion is idempotent over its own output.
func InlineMarkdown(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		b.WriteString(inlineChildren(n))
	}
	return tidyInline(b.String())
}

func inlineChildren(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(inlineNode(c))
	}
	return b.String()
}

func inlineNode(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return DecodeEntities(spaceRun.ReplaceAllString(strings.ReplaceAll(n.Data, "\n", " "), " "))
	case html.ElementNode:
		switch n.Data {
		case "strong", "b":
			inner := strings.TrimSpace(inlineChildren(n))
			if inner == "" {
				return ""
			}
			return "**" + inner + "**"
		case "em", "i":
			inner := strings.TrimSpace(inlineChildren(n))
			if inner == "" {
				return ""
			}
			return "*" + inner + "*"
		case "a":
			text := strings.TrimSpace(inlineChildren(n))
			href := attrValue(n, "href")
			if href == "" {
				return text
			}
			if text == "" {
				text = href
			}
			return "[" + text + "](" + href + ")"
		case "br":
			return "\n"
		case "script", "style", "noscript", "template":
			return ""
		default:
			return inlineChildren(n)
		}
	}
	return ""
}

func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// tidyInline collapses space runs left over from stripped tags without
// reordering or rewriting any text.
func tidyInline(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
