package main

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Card is one repeated-card-grid entry: related posts, resource grids,
// stat tiles, benefit lists.
type Card struct {
	Image       string // markdown image line
	Title       string
	Description string
	LinkText    string
	LinkHref    string
}

// parseCards extracts cards from the first selector whose matches yield at
// least one usable card.
func parseCards(sel *goquery.Selection, selectors ...string) []Card {
	for _, s := range selectors {
		found := sel.Find(s)
		if found.Length() == 0 {
			continue
		}
		var cards []Card
		found.Each(func(_ int, el *goquery.Selection) {
			c := Card{
				Image:       imageOf(el, "img"),
				Title:       firstText(el, "h2", "h3", "h4", ".card-title"),
				Description: firstText(el, "p", ".card-description", ".card-body"),
				LinkText:    firstText(el, "a"),
				LinkHref:    firstAttr(el, "href", "a"),
			}
			if c.Title != "" || c.Description != "" {
				cards = append(cards, c)
			}
		})
		if len(cards) > 0 {
			return cards
		}
	}
	return nil
}

// cardRows renders cards as block-table rows: one composite cell per card,
// image then bold title then description then link, source order preserved.
func cardRows(cards []Card) [][]string {
	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		var parts []string
		if c.Image != "" {
			parts = append(parts, c.Image)
		}
		if c.Title != "" {
			parts = append(parts, "**"+c.Title+"**")
		}
		if c.Description != "" {
			parts = append(parts, c.Description)
		}
		if c.LinkHref != "" {
			text := c.LinkText
			if text == "" {
				text = c.Title
			}
			if text == "" {
				text = c.LinkHref
			}
			parts = append(parts, "["+text+"]("+c.LinkHref+")")
		}
		rows = append(rows, []string{strings.Join(parts, " ")})
	}
	return rows
}

// AccordionItem is one expandable key/value pair, like an FAQ entry.
type AccordionItem struct {
	Label string
	Body  string
}

// parseAccordion extracts label/body pairs from the first matching
// container cascade.
func parseAccordion(sel *goquery.Selection, selectors ...string) []AccordionItem {
	for _, s := range selectors {
		found := sel.Find(s)
		if found.Length() == 0 {
			continue
		}
		var items []AccordionItem
		found.Each(func(_ int, el *goquery.Selection) {
			item := AccordionItem{
				Label: firstText(el, "summary", "h3", "h4", ".accordion-title", "dt", "button"),
				Body:  firstText(el, ".accordion-body", ".accordion-content", "dd", "p"),
			}
			if item.Label != "" {
				items = append(items, item)
			}
		})
		if len(items) > 0 {
			return items
		}
	}
	return nil
}

func accordionRows(items []AccordionItem) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Label, item.Body})
	}
	return rows
}
