package main

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// GatedResource is the IR for download landing pages: hero copy, a benefit
// list next to the form call-to-action, and related resources.
type GatedResource struct {
	meta         *PageMeta
	Title        string
	Intro        string
	HeroImage    string
	Benefits     []string
	FormCTAText  string
	FormCTALink  string
	ResourceType string
	Related      []Card
}

func (g *GatedResource) Meta() *PageMeta { return g.meta }

func parseGatedResource(doc *goquery.Document, pageURL string) (IR, error) {
	root, err := requireRoot(doc, pageURL, TemplateGatedResource,
		"main .gated-resource", "main .resource", "main form", "main")
	if err != nil {
		return nil, err
	}
	// The root cascade can land on the form itself; widen back out to main
	// for copy extraction while requiring the form anchor to exist.
	scope := doc.Find("main").First()
	if scope.Length() == 0 {
		scope = root
	}

	g := &GatedResource{
		Title:        pageTitle(doc, scope),
		Intro:        firstText(scope, ".intro p", ".hero p", "header p"),
		HeroImage:    imageOf(scope, ".hero img", ".resource-preview img", "figure img"),
		Benefits:     collectTexts(scope, ".benefits li", ".what-youll-learn li", ".resource-bullets li"),
		FormCTAText:  firstText(scope, "form button", "form input[type=submit]", ".form-cta"),
		FormCTALink:  firstAttr(scope, "action", "form"),
		ResourceType: firstText(scope, ".resource-type", ".eyebrow", ".kicker"),
		Related:      parseCards(doc.Selection, ".related-resources .card", ".related-posts .card"),
	}
	if g.FormCTAText == "" {
		g.FormCTAText = firstAttr(scope, "value", "form input[type=submit]")
	}

	g.meta = &PageMeta{
		Title:       g.Title,
		Description: metaContent(doc, "description"),
		Template:    TemplateGatedResource,
	}
	g.meta.Add("resourceType", g.ResourceType)
	g.meta.Add("image", imageSrc(g.HeroImage))
	return g, nil
}

func serializeGatedResource(ir IR) (string, error) {
	g, ok := ir.(*GatedResource)
	if !ok {
		return "", fmt.Errorf("gated-resource serializer given %T", ir)
	}

	doc := &Document{}

	hero := doc.NewSection()
	hero.Text(g.HeroImage)
	hero.Text("# " + g.Title)
	hero.Text(g.Intro)

	left := bulletList(g.Benefits)
	right := ""
	if g.FormCTAText != "" {
		if g.FormCTALink != "" {
			right = "[" + g.FormCTAText + "](" + g.FormCTALink + ")"
		} else {
			right = "**" + g.FormCTAText + "**"
		}
	}
	if left != "" || right != "" {
		doc.NewSection().Block(BlockColumns, [][]string{{left, right}})
	}

	if len(g.Related) > 0 {
		doc.NewSection().Block(BlockCards, cardRows(g.Related))
	}

	doc.Metadata(g.meta.Rows())
	return doc.Markdown(), nil
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}
