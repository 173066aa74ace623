package main

import (
	"fmt"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

// CompanyUtility is the baseline IR for generic utility pages (about,
// legal, contact): the whole main region converted to markdown as-is. It is
// also the default template for URLs cataloged nowhere.
type CompanyUtility struct {
	meta  *PageMeta
	Title string
	Body  string
}

func (u *CompanyUtility) Meta() *PageMeta { return u.meta }

// utilityConverter is the generic HTML→markdown converter used only by this
// template; the structured templates emit their own inline markdown.
var utilityConverter = md.NewConverter("", true, nil)

func parseCompanyUtility(doc *goquery.Document, pageURL string) (IR, error) {
	root, err := requireRoot(doc, pageURL, TemplateCompanyUtility,
		"main", "article", "body")
	if err != nil {
		return nil, err
	}

	html, err := goquery.OuterHtml(root)
	if err != nil {
		return nil, &ParseError{URL: pageURL, Template: TemplateCompanyUtility, Reason: fmt.Sprintf("rendering content root: %v", err)}
	}
	body, err := utilityConverter.ConvertString(html)
	if err != nil {
		return nil, &ParseError{URL: pageURL, Template: TemplateCompanyUtility, Reason: fmt.Sprintf("converting content root: %v", err)}
	}

	u := &CompanyUtility{
		Title: pageTitle(doc, root),
		Body:  body,
		meta: &PageMeta{
			Title:       pageTitle(doc, root),
			Description: metaContent(doc, "description"),
			Template:    TemplateCompanyUtility,
		},
	}
	return u, nil
}

func serializeCompanyUtility(ir IR) (string, error) {
	u, ok := ir.(*CompanyUtility)
	if !ok {
		return "", fmt.Errorf("company-utility serializer given %T", ir)
	}

	doc := &Document{}
	doc.NewSection().Text(u.Body)
	doc.Metadata(u.meta.Rows())
	return doc.Markdown(), nil
}
