package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Migrator drives fetch → parse → serialize → write over a catalog
// selection, strictly sequentially, and accumulates the run report.
type Migrator struct {
	settings *Settings
	fetcher  *Fetcher
	dryRun   bool
	verbose  bool
	// sleep is swapped out in tests; production runs use time.Sleep.
	sleep func(time.Duration)
}

// NewMigrator builds a migrator from settings.
func NewMigrator(settings *Settings, dryRun, verbose bool) *Migrator {
	return &Migrator{
		settings: settings,
		fetcher:  NewFetcher(settings.RequestTimeout(), settings.MaxRedirects, settings.UserAgent),
		dryRun:   dryRun,
		verbose:  verbose,
		sleep:    time.Sleep,
	}
}

// Run processes one selection against the catalog. Per-URL failures are
// recorded and never stop the loop; the returned error is reserved for
// catalog-level problems surfaced by Expand.
func (m *Migrator) Run(catalog *Catalog, sel Selection) (*RunReport, error) {
	items, skipped, err := catalog.Expand(sel)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	report := &RunReport{
		RunID:     uuid.NewString(),
		Timestamp: start.UTC(),
		Total:     len(items) + skipped,
		Skipped:   skipped,
		Errors:    []RunError{},
	}

	if skipped > 0 {
		log.Printf("Skipping %d already-migrated URL(s)", skipped)
	}
	log.Printf("Processing %d URL(s)...", len(items))

	for i := range items {
		item := &items[i]
		if i > 0 {
			m.sleep(m.settings.RequestDelay())
		}

		log.Printf("[%d/%d] %s", i+1, len(items), item.URL)
		outPath, err := m.processItem(item)
		if err != nil {
			item.Status = StatusFailed
			report.Failed++
			report.Errors = append(report.Errors, RunError{URL: item.URL, Error: err.Error()})
			log.Printf("✗ %s: %v", item.URL, err)
			continue
		}

		item.Status = StatusSuccess
		report.Success++
		if m.dryRun {
			log.Printf("✓ %s (dry run, would write %s)", item.URL, outPath)
		} else {
			log.Printf("✓ %s → %s", item.URL, outPath)
		}
	}

	report.DurationMs = time.Since(start).Milliseconds()
	return report, nil
}

// processItem runs one WorkItem end to end and returns the output path it
// wrote (or would write under dry-run).
func (m *Migrator) processItem(item *WorkItem) (string, error) {
	tmpl, err := LookupTemplate(item.Template)
	if err != nil {
		return "", err
	}

	m.debug("→ Fetching %s", item.URL)
	raw, err := m.fetcher.Fetch(item.URL)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", &ParseError{URL: item.URL, Template: item.Template, Reason: fmt.Sprintf("invalid HTML: %v", err)}
	}

	m.debug("→ Parsing as %s", item.Template)
	ir, err := tmpl.Parse(doc, item.URL)
	if err != nil {
		return "", err
	}

	m.debug("→ Serializing")
	markdown, err := tmpl.Serialize(ir)
	if err != nil {
		return "", err
	}
	if len(markdown) < m.settings.MinMarkdownChars {
		return "", &SerializationError{URL: item.URL, Length: len(markdown), Floor: m.settings.MinMarkdownChars}
	}

	outPath, err := ResolveOutputPath(m.settings.ContentRoot, item.URL)
	if err != nil {
		return "", err
	}

	if m.dryRun {
		return outPath, nil
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return "", &WriteError{Path: outPath, Err: err}
	}
	if err := os.WriteFile(outPath, []byte(markdown), 0644); err != nil {
		return "", &WriteError{Path: outPath, Err: err}
	}
	return outPath, nil
}

func (m *Migrator) debug(format string, args ...interface{}) {
	if m.verbose {
		log.Printf("  "+format, args...)
	}
}

// WriteReport persists the run report at the configured path, overwriting
// the previous run's file.
func (m *Migrator) WriteReport(report *RunReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling run report: %w", err)
	}
	if err := os.WriteFile(m.settings.ReportPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing run report: %w", err)
	}
	return nil
}

// PrintSummary renders the final counts table and, when failures occurred,
// the full error list.
func PrintSummary(report *RunReport) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Total", "Success", "Failed", "Skipped", "Duration"})
	tw.AppendRow(table.Row{
		strconv.Itoa(report.Total),
		strconv.Itoa(report.Success),
		strconv.Itoa(report.Failed),
		strconv.Itoa(report.Skipped),
		(time.Duration(report.DurationMs) * time.Millisecond).String(),
	})
	fmt.Println(tw.Render())

	if len(report.Errors) > 0 {
		fmt.Println("Failures:")
		for _, e := range report.Errors {
			fmt.Printf("  ✗ %s: %s\n", e.URL, e.Error)
		}
	}
}
