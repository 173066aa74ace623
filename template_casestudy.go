package main

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CaseStudy is the IR for customer stories: hero, challenge/solution
// summary, stat tiles, narrative column pairs, tags, related stories.
type CaseStudy struct {
	meta      *PageMeta
	HeroImage string
	Title     string
	Customer  string
	Challenge string
	Solution  string
	Stats     []Card
	Narrative [][2]string
	Tags      []string
	Related   []Card
}

func (c *CaseStudy) Meta() *PageMeta { return c.meta }

func parseCaseStudy(doc *goquery.Document, pageURL string) (IR, error) {
	root, err := requireRoot(doc, pageURL, TemplateCaseStudy,
		"main .case-study", "article.case-study", "main article", "main")
	if err != nil {
		return nil, err
	}

	c := &CaseStudy{
		Title:     pageTitle(doc, root),
		HeroImage: imageOf(root, ".hero img", ".case-study-hero img", "figure img"),
		Customer:  firstText(root, ".customer-name", ".customer", ".client-name"),
		Challenge: firstText(root, ".challenge p", ".summary .challenge", ".challenge"),
		Solution:  firstText(root, ".solution p", ".summary .solution", ".solution"),
		Stats:     parseStats(root),
		Narrative: parseNarrative(root),
		Tags:      collectTexts(root, ".tags a", ".tag-list a", ".topics a"),
		Related:   parseCards(doc.Selection, ".related-studies .card", ".related-posts .card", ".related article"),
	}

	c.meta = &PageMeta{
		Title:       c.Title,
		Description: metaContent(doc, "description"),
		Template:    TemplateCaseStudy,
	}
	c.meta.Add("customer", c.Customer)
	c.meta.Add("image", imageSrc(c.HeroImage))
	return c, nil
}

func serializeCaseStudy(ir IR) (string, error) {
	c, ok := ir.(*CaseStudy)
	if !ok {
		return "", fmt.Errorf("case-study serializer given %T", ir)
	}

	doc := &Document{}

	hero := doc.NewSection()
	hero.Text(c.HeroImage)
	hero.Text("# " + c.Title)
	if c.Customer != "" {
		hero.Text("**" + c.Customer + "**")
	}

	if c.Challenge != "" || c.Solution != "" {
		doc.NewSection().Block(BlockColumns, [][]string{{
			strings.TrimSpace("**Challenge** " + c.Challenge),
			strings.TrimSpace("**Solution** " + c.Solution),
		}})
	}

	if len(c.Stats) > 0 {
		doc.NewSection().Block(BlockCards, cardRows(c.Stats))
	}

	if len(c.Narrative) > 0 {
		narrative := doc.NewSection()
		rows := make([][]string, 0, len(c.Narrative))
		for _, pair := range c.Narrative {
			rows = append(rows, []string{pair[0], pair[1]})
		}
		narrative.Block(BlockColumns, rows)
	}

	if len(c.Tags) > 0 {
		doc.NewSection().Text(strings.Join(c.Tags, ", "))
	}
	if len(c.Related) > 0 {
		doc.NewSection().Block(BlockCards, cardRows(c.Related))
	}

	doc.Metadata(c.meta.Rows())
	return doc.Markdown(), nil
}

// parseStats reads stat tiles (big value, small label) into cards with the
// value bolded.
func parseStats(root *goquery.Selection) []Card {
	for _, s := range []string{".stats .stat", ".results .stat", ".metrics li"} {
		found := root.Find(s)
		if found.Length() == 0 {
			continue
		}
		var stats []Card
		found.Each(func(_ int, el *goquery.Selection) {
			value := firstText(el, ".stat-value", ".value", "strong", "h3")
			label := firstText(el, ".stat-label", ".label", "p", "span")
			if value == "" {
				return
			}
			stats = append(stats, Card{Title: value, Description: label})
		})
		if len(stats) > 0 {
			return stats
		}
	}
	return nil
}

// parseNarrative reads heading/content pairs from the story body, one
// Columns row per pair.
func parseNarrative(root *goquery.Selection) [][2]string {
	for _, s := range []string{".narrative section", ".story section", ".case-study-body section"} {
		found := root.Find(s)
		if found.Length() == 0 {
			continue
		}
		var pairs [][2]string
		found.Each(func(_ int, el *goquery.Selection) {
			heading := firstText(el, "h2", "h3")
			content := strings.Join(collectTexts(el, "p"), "\n")
			if heading == "" && content == "" {
				return
			}
			pairs = append(pairs, [2]string{heading, content})
		})
		if len(pairs) > 0 {
			return pairs
		}
	}
	return nil
}
