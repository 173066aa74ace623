package main

import (
	"errors"
	"strings"
	"testing"
)

const caseStudyFixture = `<!DOCTYPE html>
<html>
<head>
<title>Acme Case Study</title>
<meta name="description" content="How Acme cut costs.">
</head>
<body>
<main>
<div class="case-study">
  <div class="hero"><img src="/media/acme.jpg" alt="Acme"></div>
  <h1>Acme Cuts Costs by Half</h1>
  <span class="customer-name">Acme Corp</span>
  <div class="summary">
    <div class="challenge"><p>Costs were rising fast.</p></div>
    <div class="solution"><p>They switched platforms.</p></div>
  </div>
  <div class="stats">
    <div class="stat"><span class="stat-value">50%</span><span class="stat-label">cost reduction</span></div>
    <div class="stat"><span class="stat-value">3x</span><span class="stat-label">faster launches</span></div>
  </div>
  <div class="narrative">
    <section><h2>The Problem</h2><p>Things were slow.</p></section>
    <section><h2>The Fix</h2><p>Things got fast.</p></section>
  </div>
  <div class="tags"><a href="/t/retail">retail</a></div>
</div>
</main>
</body>
</html>`

func TestParseCaseStudy(t *testing.T) {
	doc := mustDoc(t, caseStudyFixture)
	ir, err := parseCaseStudy(doc, "https://example.com/customers/acme")
	if err != nil {
		t.Fatalf("parseCaseStudy() error = %v", err)
	}

	c := ir.(*CaseStudy)
	if c.Customer != "Acme Corp" {
		t.Errorf("Customer = %q", c.Customer)
	}
	if c.Challenge != "Costs were rising fast." {
		t.Errorf("Challenge = %q", c.Challenge)
	}
	if c.Solution != "They switched platforms." {
		t.Errorf("Solution = %q", c.Solution)
	}
	if len(c.Stats) != 2 || c.Stats[0].Title != "50%" || c.Stats[0].Description != "cost reduction" {
		t.Errorf("Stats = %+v", c.Stats)
	}
	if len(c.Narrative) != 2 || c.Narrative[1][0] != "The Fix" {
		t.Errorf("Narrative = %+v", c.Narrative)
	}
}

func TestSerializeCaseStudy(t *testing.T) {
	doc := mustDoc(t, caseStudyFixture)
	ir, err := parseCaseStudy(doc, "https://example.com/customers/acme")
	if err != nil {
		t.Fatalf("parseCaseStudy() error = %v", err)
	}

	markdown, err := serializeCaseStudy(ir)
	if err != nil {
		t.Fatalf("serializeCaseStudy() error = %v", err)
	}

	for _, want := range []string{
		"# Acme Cuts Costs by Half",
		"**Acme Corp**",
		"| **Challenge** Costs were rising fast. | **Solution** They switched platforms. |",
		"| **50%** cost reduction |",
		"| The Problem | Things were slow. |",
		"retail",
		"| customer | Acme Corp |",
		"| template | case-study |",
	} {
		if !strings.Contains(markdown, want) {
			t.Errorf("markdown missing %q:\n%s", want, markdown)
		}
	}
}

func TestParseCaseStudyRootCascade(t *testing.T) {
	// No .case-study container: the cascade falls back to main.
	doc := mustDoc(t, `<html><body><main><h1>Plain</h1><p>enough text here</p></main></body></html>`)
	ir, err := parseCaseStudy(doc, "https://example.com/x")
	if err != nil {
		t.Fatalf("parseCaseStudy() error = %v", err)
	}
	if ir.Meta().Title != "Plain" {
		t.Errorf("Title = %q", ir.Meta().Title)
	}
}

func TestParseCaseStudyMissingRoot(t *testing.T) {
	doc := mustDoc(t, `<html><body><div>bare page</div></body></html>`)
	_, err := parseCaseStudy(doc, "https://example.com/x")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("parseCaseStudy() error = %T, want *ParseError", err)
	}
}
