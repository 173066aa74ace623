package main

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BlogArticle is the IR for blog posts: hero and author, a free-form body,
// tags, and related-article cards.
type BlogArticle struct {
	meta          *PageMeta
	HeroImage     string
	Title         string
	AuthorName    string
	AuthorTitle   string
	AuthorImage   string
	PublishedDate string
	Body          []string
	Tags          []string
	Related       []Card
}

func (a *BlogArticle) Meta() *PageMeta { return a.meta }

func parseBlogArticle(doc *goquery.Document, pageURL string) (IR, error) {
	root, err := requireRoot(doc, pageURL, TemplateBlogArticle,
		"main article", "article", "main .blog-post", ".post-content")
	if err != nil {
		return nil, err
	}

	a := &BlogArticle{
		Title:         pageTitle(doc, root),
		HeroImage:     imageOf(root, ".hero img", ".featured-image img", "figure img"),
		AuthorName:    firstText(root, ".author-name", ".author .name", ".byline .name"),
		AuthorTitle:   firstText(root, ".author-title", ".author-bio", ".byline .role"),
		AuthorImage:   imageOf(root, ".author img", ".author-avatar img", ".byline img"),
		PublishedDate: publishedDate(root),
		Tags:          collectTexts(root, ".tags a", ".tag-list a", ".post-tags a"),
		Related:       parseCards(doc.Selection, ".related-posts .card", ".related-articles .card", ".related article"),
	}

	body := firstMatch(root, ".post-body", ".article-body", ".rich-text")
	if body == nil {
		body = root
	}
	a.Body = BodyBlocks(body)
	// When the body falls back to the article root the title heading is
	// already in the hero; drop the duplicate.
	if len(a.Body) > 0 && a.Body[0] == "# "+a.Title {
		a.Body = a.Body[1:]
	}

	a.meta = &PageMeta{
		Title:       a.Title,
		Description: metaContent(doc, "description"),
		Template:    TemplateBlogArticle,
	}
	a.meta.Add("author", a.AuthorName)
	a.meta.Add("publishedDate", a.PublishedDate)
	a.meta.Add("image", imageSrc(a.HeroImage))
	return a, nil
}

func serializeBlogArticle(ir IR) (string, error) {
	a, ok := ir.(*BlogArticle)
	if !ok {
		return "", fmt.Errorf("blog-article serializer given %T", ir)
	}

	doc := &Document{}

	hero := doc.NewSection()
	hero.Text(a.HeroImage)
	hero.Text("# " + a.Title)
	if a.AuthorName != "" {
		hero.Block(BlockColumns, [][]string{{
			a.AuthorImage,
			strings.TrimSpace("**" + a.AuthorName + "** " + a.AuthorTitle),
		}})
	}

	body := doc.NewSection()
	for _, fragment := range a.Body {
		body.Text(fragment)
	}

	if len(a.Tags) > 0 {
		doc.NewSection().Text(strings.Join(a.Tags, ", "))
	}
	if len(a.Related) > 0 {
		doc.NewSection().Block(BlockCards, cardRows(a.Related))
	}

	doc.Metadata(a.meta.Rows())
	return doc.Markdown(), nil
}

// publishedDate prefers a machine-readable datetime attribute over the
// visible text.
func publishedDate(root *goquery.Selection) string {
	if v := firstAttr(root, "datetime", "time"); v != "" {
		return v
	}
	return firstText(root, "time", ".published-date", ".post-date")
}

// imageSrc extracts the source path from a markdown image line for use as a
// metadata value.
func imageSrc(imageMarkdown string) string {
	open := strings.LastIndex(imageMarkdown, "(")
	end := strings.LastIndex(imageMarkdown, ")")
	if open == -1 || end <= open {
		return ""
	}
	return imageMarkdown[open+1 : end]
}
