package main

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SolutionsPage is the IR for solution marketing pages: hero, feature
// column pairs, an FAQ accordion, a logo/quote carousel, and a closing
// call-to-action.
type SolutionsPage struct {
	meta      *PageMeta
	Title     string
	Intro     string
	HeroImage string
	Features  [][2]string
	FAQ       []AccordionItem
	Carousel  []string
	CTAText   string
	CTALink   string
}

func (s *SolutionsPage) Meta() *PageMeta { return s.meta }

func parseSolutionsPage(doc *goquery.Document, pageURL string) (IR, error) {
	root, err := requireRoot(doc, pageURL, TemplateSolutionsPage,
		"main .solutions", "main .solution-page", "main article", "main")
	if err != nil {
		return nil, err
	}

	s := &SolutionsPage{
		Title:     pageTitle(doc, root),
		Intro:     firstText(root, ".hero p", ".intro p", "header p"),
		HeroImage: imageOf(root, ".hero img", "figure img"),
		Features:  parseFeatures(root),
		FAQ:       parseAccordion(root, ".faq details", ".faq .accordion-item", ".accordion .item", "details"),
		Carousel:  parseCarousel(root),
		CTAText:   firstText(root, ".cta a", ".cta button", "footer a"),
		CTALink:   firstAttr(root, "href", ".cta a", "footer a"),
	}

	s.meta = &PageMeta{
		Title:       s.Title,
		Description: metaContent(doc, "description"),
		Template:    TemplateSolutionsPage,
	}
	s.meta.Add("image", imageSrc(s.HeroImage))
	return s, nil
}

func serializeSolutionsPage(ir IR) (string, error) {
	s, ok := ir.(*SolutionsPage)
	if !ok {
		return "", fmt.Errorf("solutions-page serializer given %T", ir)
	}

	doc := &Document{}

	hero := doc.NewSection()
	hero.Text(s.HeroImage)
	hero.Text("# " + s.Title)
	hero.Text(s.Intro)

	if len(s.Features) > 0 {
		rows := make([][]string, 0, len(s.Features))
		for _, pair := range s.Features {
			rows = append(rows, []string{pair[0], pair[1]})
		}
		doc.NewSection().Block(BlockColumns, rows)
	}

	if len(s.FAQ) > 0 {
		doc.NewSection().Block(BlockAccordion, accordionRows(s.FAQ))
	}

	if len(s.Carousel) > 0 {
		rows := make([][]string, 0, len(s.Carousel))
		for _, slide := range s.Carousel {
			rows = append(rows, []string{slide})
		}
		doc.NewSection().Block(BlockCarousel, rows)
	}

	if s.CTAText != "" {
		cta := doc.NewSection()
		if s.CTALink != "" {
			cta.Text("[" + s.CTAText + "](" + s.CTALink + ")")
		} else {
			cta.Text("**" + s.CTAText + "**")
		}
	}

	doc.Metadata(s.meta.Rows())
	return doc.Markdown(), nil
}

// parseFeatures reads feature pairs: title column, description column.
func parseFeatures(root *goquery.Selection) [][2]string {
	for _, sel := range []string{".features .feature", ".feature-grid .feature", ".features li"} {
		found := root.Find(sel)
		if found.Length() == 0 {
			continue
		}
		var pairs [][2]string
		found.Each(func(_ int, el *goquery.Selection) {
			title := firstText(el, "h2", "h3", "h4", "strong")
			desc := firstText(el, "p", ".feature-description")
			if title == "" && desc == "" {
				return
			}
			if title != "" {
				title = "**" + title + "**"
			}
			pairs = append(pairs, [2]string{title, desc})
		})
		if len(pairs) > 0 {
			return pairs
		}
	}
	return nil
}

// parseCarousel reads slides: customer logos or pull quotes, one cell per
// slide.
func parseCarousel(root *goquery.Selection) []string {
	for _, sel := range []string{".carousel .slide", ".logos li", ".testimonials blockquote"} {
		found := root.Find(sel)
		if found.Length() == 0 {
			continue
		}
		var slides []string
		found.Each(func(_ int, el *goquery.Selection) {
			if img := imageOf(el, "img"); img != "" {
				slides = append(slides, img)
				return
			}
			if text := InlineMarkdown(el); text != "" {
				slides = append(slides, strings.ReplaceAll(text, "\n", " "))
			}
		})
		if len(slides) > 0 {
			return slides
		}
	}
	return nil
}
