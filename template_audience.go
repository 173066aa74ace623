package main

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BuiltForAudience is the IR for audience-targeted landing pages: a dark
// hero, benefit cards, a testimonial, and a call-to-action column pair.
type BuiltForAudience struct {
	meta        *PageMeta
	Title       string
	Audience    string
	Intro       string
	HeroImage   string
	Benefits    []Card
	Quote       string
	QuoteSource string
	CTAText     string
	CTALink     string
}

func (b *BuiltForAudience) Meta() *PageMeta { return b.meta }

func parseBuiltForAudience(doc *goquery.Document, pageURL string) (IR, error) {
	root, err := requireRoot(doc, pageURL, TemplateBuiltForAudience,
		"main .built-for", "main .audience-page", "main article", "main")
	if err != nil {
		return nil, err
	}

	b := &BuiltForAudience{
		Title:       pageTitle(doc, root),
		Audience:    firstText(root, ".audience", ".eyebrow", ".kicker"),
		Intro:       firstText(root, ".hero p", ".intro p", "header p"),
		HeroImage:   imageOf(root, ".hero img", "figure img"),
		Benefits:    parseCards(root, ".benefits .card", ".benefit-grid .benefit", ".benefits li"),
		Quote:       firstText(root, ".testimonial blockquote", "blockquote p", "blockquote"),
		QuoteSource: firstText(root, ".testimonial cite", "cite", ".quote-source"),
		CTAText:     firstText(root, ".cta a", ".cta button"),
		CTALink:     firstAttr(root, "href", ".cta a"),
	}

	b.meta = &PageMeta{
		Title:       b.Title,
		Description: metaContent(doc, "description"),
		Template:    TemplateBuiltForAudience,
	}
	b.meta.Add("audience", b.Audience)
	return b, nil
}

func serializeBuiltForAudience(ir IR) (string, error) {
	b, ok := ir.(*BuiltForAudience)
	if !ok {
		return "", fmt.Errorf("built-for-audience serializer given %T", ir)
	}

	doc := &Document{}

	// The hero renders on a dark section; the hint travels as Section
	// Metadata so the front end can theme it.
	hero := doc.NewSection()
	hero.Text(b.HeroImage)
	hero.Text("# " + b.Title)
	hero.Text(b.Intro)
	hero.Meta("style", "dark")

	if len(b.Benefits) > 0 {
		doc.NewSection().Block(BlockCards, cardRows(b.Benefits))
	}

	if b.Quote != "" {
		quote := doc.NewSection()
		quote.Text("> " + strings.ReplaceAll(b.Quote, "\n", " "))
		if b.QuoteSource != "" {
			quote.Text("**" + b.QuoteSource + "**")
		}
	}

	if b.CTAText != "" {
		cta := ""
		if b.CTALink != "" {
			cta = "[" + b.CTAText + "](" + b.CTALink + ")"
		} else {
			cta = "**" + b.CTAText + "**"
		}
		doc.NewSection().Block(BlockColumns, [][]string{{b.Intro, cta}})
	}

	doc.Metadata(b.meta.Rows())
	return doc.Markdown(), nil
}
