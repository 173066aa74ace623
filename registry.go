package main

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageMeta is the metadata sub-record every IR variant carries. It renders
// as the trailing Metadata block: title, description, template-specific
// keys in insertion order, then template.
type PageMeta struct {
	Title       string
	Description string
	Template    string
	extra       [][2]string
}

// Add appends a template-specific metadata key. Empty values are dropped so
// optional source fields leave no blank rows.
func (m *PageMeta) Add(key, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	m.extra = append(m.extra, [2]string{key, value})
}

// Rows returns the Metadata block rows in their fixed order.
func (m *PageMeta) Rows() [][]string {
	rows := [][]string{
		{"title", m.Title},
		{"description", m.Description},
	}
	for _, kv := range m.extra {
		rows = append(rows, []string{kv[0], kv[1]})
	}
	rows = append(rows, []string{"template", m.Template})
	return rows
}

// IR is the parsed content for one page. Each template variant defines its
// own concrete type; all of them expose the shared metadata record.
type IR interface {
	Meta() *PageMeta
}

// Template is one (parse, serialize) strategy. Parse returns an IR only on
// success: a page whose structural anchor is missing yields a *ParseError,
// never a half-filled IR. Serialize is pure and deterministic.
type Template struct {
	Parse     func(doc *goquery.Document, pageURL string) (IR, error)
	Serialize func(ir IR) (string, error)
}

// registry is the closed strategy table, one entry per template id.
var registry = map[string]Template{
	TemplateBlogArticle:      {Parse: parseBlogArticle, Serialize: serializeBlogArticle},
	TemplateGatedResource:    {Parse: parseGatedResource, Serialize: serializeGatedResource},
	TemplateCaseStudy:        {Parse: parseCaseStudy, Serialize: serializeCaseStudy},
	TemplateSolutionsPage:    {Parse: parseSolutionsPage, Serialize: serializeSolutionsPage},
	TemplateBuiltForAudience: {Parse: parseBuiltForAudience, Serialize: serializeBuiltForAudience},
	TemplateCompanyUtility:   {Parse: parseCompanyUtility, Serialize: serializeCompanyUtility},
}

// LookupTemplate returns the registered strategy for a template id.
func LookupTemplate(id string) (Template, error) {
	t, ok := registry[id]
	if !ok {
		return Template{}, fmt.Errorf("no template registered for %q", id)
	}
	return t, nil
}

// Selector cascade helpers. Every optional field degrades to an empty value
// when none of its selectors match; only the per-template root anchor is
// allowed to fail a parse.

// firstMatch returns the first selector's non-empty selection, or nil.
func firstMatch(sel *goquery.Selection, selectors ...string) *goquery.Selection {
	for _, s := range selectors {
		if found := sel.Find(s); found.Length() > 0 {
			return found.First()
		}
	}
	return nil
}

// firstText returns the inline-markdown text of the first matching
// selector, or "".
func firstText(sel *goquery.Selection, selectors ...string) string {
	if found := firstMatch(sel, selectors...); found != nil {
		return InlineMarkdown(found)
	}
	return ""
}

// firstAttr returns the named attribute of the first matching selector, or
// "".
func firstAttr(sel *goquery.Selection, attr string, selectors ...string) string {
	for _, s := range selectors {
		if found := sel.Find(s); found.Length() > 0 {
			if v, ok := found.First().Attr(attr); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
	}
	return ""
}

// metaContent reads a <meta> content value by name, falling back to the
// OpenGraph property of the same name.
func metaContent(doc *goquery.Document, name string) string {
	if v, ok := doc.Find(fmt.Sprintf(`meta[name=%q]`, name)).Attr("content"); ok {
		return strings.TrimSpace(v)
	}
	if v, ok := doc.Find(fmt.Sprintf(`meta[property="og:%s"]`, name)).Attr("content"); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// pageTitle resolves a document title: h1 inside root, else og:title, else
// <title>.
func pageTitle(doc *goquery.Document, root *goquery.Selection) string {
	if t := firstText(root, "h1"); t != "" {
		return t
	}
	if t := metaContent(doc, "title"); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("title").Text())
}

// imageOf returns the markdown image line for the first matching selector,
// or "".
func imageOf(sel *goquery.Selection, selectors ...string) string {
	for _, s := range selectors {
		found := sel.Find(s)
		if found.Length() == 0 {
			continue
		}
		node := found.First().Get(0)
		if line := imageLine(node); line != "" {
			return line
		}
	}
	return ""
}

// requireRoot resolves the one fatal-per-document anchor for a template.
func requireRoot(doc *goquery.Document, pageURL, templateID string, selectors ...string) (*goquery.Selection, error) {
	if root := firstMatch(doc.Selection, selectors...); root != nil {
		return root, nil
	}
	return nil, &ParseError{
		URL:      pageURL,
		Template: templateID,
		Reason:   fmt.Sprintf("content root not found (tried %s)", strings.Join(selectors, ", ")),
	}
}

// collectTexts gathers inline text for every element the selector cascade
// matches, in document order.
func collectTexts(sel *goquery.Selection, selectors ...string) []string {
	for _, s := range selectors {
		found := sel.Find(s)
		if found.Length() == 0 {
			continue
		}
		var out []string
		found.Each(func(_ int, el *goquery.Selection) {
			if text := InlineMarkdown(el); text != "" {
				out = append(out, text)
			}
		})
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
