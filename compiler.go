package main

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// Compile renders the block-table markdown dialect into an HTML fragment:
// one top-level <div> per divider-delimited section, block tables as nested
// div structures, everything else as plain semantic elements. It recognizes
// only the grammar the serializer emits; unknown constructs pass through as
// literal text.
func Compile(markdown string) string {
	var sections [][]string
	var current []string
	for _, line := range strings.Split(markdown, "\n") {
		if strings.TrimSpace(line) == "---" {
			sections = append(sections, current)
			current = nil
			continue
		}
		current = append(current, line)
	}
	sections = append(sections, current)

	var out []string
	for _, lines := range sections {
		out = append(out, compileSection(lines))
	}
	return strings.Join(out, "\n")
}

var (
	headingRe   = regexp.MustCompile(`^(#{1,6}) +(.*)$`)
	imageOnlyRe = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]+)\)$`)
	linkOnlyRe  = regexp.MustCompile(`^\[([^\]]+)\]\(([^)]+)\)$`)
	bulletRe    = regexp.MustCompile(`^[-*] +(.*)$`)
	orderedRe   = regexp.MustCompile(`^\d+\. +(.*)$`)
	tableSepRe  = regexp.MustCompile(`^\|( *:?-{3,}:? *\|)+ *$`)
)

func compileSection(lines []string) string {
	var elements []string
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "|") && i+1 < len(lines) && tableSepRe.MatchString(strings.TrimSpace(lines[i+1])):
			var rows []string
			for i < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i]), "|") {
				rows = append(rows, strings.TrimSpace(lines[i]))
				i++
			}
			i--
			elements = append(elements, compileTable(rows)...)
		case headingRe.MatchString(line):
			m := headingRe.FindStringSubmatch(line)
			level := len(m[1])
			elements = append(elements, fmt.Sprintf("<h%d>%s</h%d>", level, renderInline(m[2]), level))
		case imageOnlyRe.MatchString(line):
			m := imageOnlyRe.FindStringSubmatch(line)
			elements = append(elements, fmt.Sprintf(`<p><picture><img src="%s" alt="%s"></picture></p>`,
				html.EscapeString(m[2]), html.EscapeString(m[1])))
		case linkOnlyRe.MatchString(line):
			m := linkOnlyRe.FindStringSubmatch(line)
			elements = append(elements, fmt.Sprintf(`<p><a href="%s">%s</a></p>`,
				html.EscapeString(m[2]), renderInline(m[1])))
		case bulletRe.MatchString(line), orderedRe.MatchString(line):
			ordered := orderedRe.MatchString(line)
			var items []string
			for i < len(lines) {
				l := strings.TrimSpace(lines[i])
				var m []string
				if ordered {
					m = orderedRe.FindStringSubmatch(l)
				} else {
					m = bulletRe.FindStringSubmatch(l)
				}
				if m == nil {
					break
				}
				items = append(items, "<li>"+renderInline(m[1])+"</li>")
				i++
			}
			i--
			tag := "ul"
			if ordered {
				tag = "ol"
			}
			elements = append(elements, fmt.Sprintf("<%s>\n%s\n</%s>", tag, strings.Join(items, "\n"), tag))
		case strings.HasPrefix(line, "> "):
			elements = append(elements, "<blockquote><p>"+renderInline(strings.TrimPrefix(line, "> "))+"</p></blockquote>")
		default:
			elements = append(elements, "<p>"+renderInline(line)+"</p>")
		}
	}

	if len(elements) == 0 {
		return "<div></div>"
	}
	return "<div>\n" + strings.Join(elements, "\n") + "\n</div>"
}

// compileTable renders one block table. The header cell names the kind;
// Metadata and Section Metadata become flat key/value pairs, other
// recognized kinds become a container div of row divs of cell divs. Tables
// with an unrecognized kind fall back to literal paragraphs.
func compileTable(lines []string) []string {
	header := splitRow(lines[0])
	kind := ""
	if len(header) > 0 {
		kind = strings.TrimSpace(header[0])
	}

	if !blockKinds[kind] {
		out := make([]string, 0, len(lines))
		for _, l := range lines {
			out = append(out, "<p>"+html.EscapeString(l)+"</p>")
		}
		return out
	}

	width := len(header)
	var rows [][]string
	for _, l := range lines[2:] {
		cells := splitRow(l)
		for len(cells) < width {
			cells = append(cells, "")
		}
		rows = append(rows, cells)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<div class=%q>\n", kebabCase(kind))
	if kind == BlockMetadata || kind == BlockSectionMetadata {
		for _, cells := range rows {
			key := cells[0]
			value := strings.TrimSpace(strings.Join(cells[1:], " "))
			fmt.Fprintf(&b, "<div><div>%s</div><div>%s</div></div>\n",
				html.EscapeString(key), html.EscapeString(value))
		}
	} else {
		for _, cells := range rows {
			b.WriteString("<div>")
			for _, cell := range cells {
				b.WriteString("<div>" + renderInline(cell) + "</div>")
			}
			b.WriteString("</div>\n")
		}
	}
	b.WriteString("</div>")
	return []string{b.String()}
}

// splitRow breaks a |-delimited table line into trimmed cells.
func splitRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

var (
	inlineLinkRe   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	inlineBoldRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	inlineItalicRe = regexp.MustCompile(`\*([^*]+)\*`)
)

// renderInline converts markdown inline markup to HTML: escape first, then
// links, bold, italic. Anything else stays literal.
func renderInline(s string) string {
	s = html.EscapeString(s)
	s = inlineLinkRe.ReplaceAllString(s, `<a href="$2">$1</a>`)
	s = inlineBoldRe.ReplaceAllString(s, `<strong>$1</strong>`)
	s = inlineItalicRe.ReplaceAllString(s, `<em>$1</em>`)
	return s
}

// kebabCase lowercases a block kind and joins words with hyphens:
// "Section Metadata" → "section-metadata".
func kebabCase(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), "-"))
}
