package main

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// BodyBlocks walks a content region and returns its markdown fragments in
// document order: headings, paragraphs, lists, images, and quotes. The walk
// is a pure recursion over the node tree; nothing is accumulated through
// shared state, so partial results are directly testable.
func BodyBlocks(sel *goquery.Selection) []string {
	var blocks []string
	for _, n := range sel.Nodes {
		blocks = append(blocks, walkBody(n)...)
	}
	return blocks
}

func walkBody(n *html.Node) []string {
	if n.Type != html.ElementNode {
		return nil
	}

	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(n.Data[1] - '0')
		text := inlineOf(n)
		if text == "" {
			return nil
		}
		return []string{strings.Repeat("#", level) + " " + text}
	case "p":
		if img := soleImage(n); img != "" {
			return []string{img}
		}
		text := inlineOf(n)
		if text == "" {
			return nil
		}
		return []string{text}
	case "ul":
		return listBlock(n, func(int) string { return "- " })
	case "ol":
		return listBlock(n, func(i int) string { return fmt.Sprintf("%d. ", i+1) })
	case "blockquote":
		text := inlineOf(n)
		if text == "" {
			return nil
		}
		return []string{"> " + strings.ReplaceAll(text, "\n", " ")}
	case "img":
		if line := imageLine(n); line != "" {
			return []string{line}
		}
		return nil
	case "figure":
		var blocks []string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			blocks = append(blocks, walkBody(c)...)
		}
		return blocks
	case "figcaption", "pre":
		text := inlineOf(n)
		if text == "" {
			return nil
		}
		return []string{text}
	case "script", "style", "noscript", "template", "nav", "aside", "form":
		return nil
	default:
		// Container elements contribute their children in order.
		var blocks []string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			blocks = append(blocks, walkBody(c)...)
		}
		return blocks
	}
}

func inlineOf(n *html.Node) string {
	return tidyInline(inlineChildren(n))
}

func listBlock(n *html.Node, marker func(int) string) []string {
	var items []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "li" {
			text := inlineOf(c)
			if text == "" {
				continue
			}
			items = append(items, marker(len(items))+strings.ReplaceAll(text, "\n", " "))
		}
	}
	if len(items) == 0 {
		return nil
	}
	return []string{strings.Join(items, "\n")}
}

func imageLine(n *html.Node) string {
	src := attrValue(n, "src")
	if src == "" {
		src = attrValue(n, "data-src")
	}
	if src == "" {
		return ""
	}
	return fmt.Sprintf("![%s](%s)", attrValue(n, "alt"), src)
}

// soleImage reports the image line when an element wraps exactly one <img>
// and no visible text.
func soleImage(n *html.Node) string {
	var img *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode && strings.TrimSpace(c.Data) != "":
			return ""
		case c.Type == html.ElementNode && c.Data == "img":
			if img != nil {
				return ""
			}
			img = c
		case c.Type == html.ElementNode:
			if strings.TrimSpace(inlineOf(c)) != "" {
				return ""
			}
		}
	}
	if img == nil {
		return ""
	}
	return imageLine(img)
}
