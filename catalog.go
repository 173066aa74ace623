package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CatalogBatch is one named group of URLs sharing a template.
type CatalogBatch struct {
	Template string   `json:"template"`
	URLs     []string `json:"urls"`
}

// Catalog is the JSON manifest enumerating batches and already-migrated
// URLs.
type Catalog struct {
	AlreadyMigrated []string                `json:"alreadyMigrated"`
	Batches         map[string]CatalogBatch `json:"batches"`
}

// Validate checks the catalog shape: at least one batch, every batch bound
// to a known template with a non-empty absolute URL list.
func (c *Catalog) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Batches, validation.Required),
	); err != nil {
		return err
	}
	ids := make([]interface{}, len(TemplateIDs))
	for i, id := range TemplateIDs {
		ids[i] = id
	}
	for name, batch := range c.Batches {
		err := validation.ValidateStruct(&batch,
			validation.Field(&batch.Template, validation.Required, validation.In(ids...)),
			validation.Field(&batch.URLs, validation.Required, validation.Each(validation.Required)),
		)
		if err != nil {
			return fmt.Errorf("batch %q: %w", name, err)
		}
		for _, u := range batch.URLs {
			if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
				return fmt.Errorf("batch %q: URL %q is not absolute", name, u)
			}
		}
	}
	return nil
}

// LoadCatalog reads and validates the catalog file. All failures are
// *CatalogError: the catalog is the one fatal surface.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CatalogError{Reason: fmt.Sprintf("reading %s", path), Err: err}
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, &CatalogError{Reason: fmt.Sprintf("parsing %s", path), Err: err}
	}
	if err := catalog.Validate(); err != nil {
		return nil, &CatalogError{Reason: "invalid catalog", Err: err}
	}
	return &catalog, nil
}

// BatchNames returns the batch names sorted for stable listings.
func (c *Catalog) BatchNames() []string {
	names := make([]string, 0, len(c.Batches))
	for name := range c.Batches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TemplateFor scans every batch for the given URL and returns its bound
// template, or DefaultTemplate when the URL is cataloged nowhere.
func (c *Catalog) TemplateFor(url string) string {
	for _, name := range c.BatchNames() {
		for _, u := range c.Batches[name].URLs {
			if u == url {
				return c.Batches[name].Template
			}
		}
	}
	return DefaultTemplate
}

// Selection names the work for one invocation: a single URL, one batch, or
// "all". Offset/Limit slice the filtered URL list; Limit <= 0 means
// unbounded.
type Selection struct {
	URL    string
	Batch  string
	Offset int
	Limit  int
}

// Expand turns a selection into pending WorkItems. URLs in the catalog's
// already-migrated set are excluded and counted as skipped. Slicing applies
// after exclusion. An unknown batch name is a *CatalogError.
func (c *Catalog) Expand(sel Selection) (items []WorkItem, skipped int, err error) {
	if sel.URL != "" {
		return []WorkItem{{URL: sel.URL, Template: c.TemplateFor(sel.URL), Status: StatusPending}}, 0, nil
	}

	migrated := make(map[string]bool, len(c.AlreadyMigrated))
	for _, u := range c.AlreadyMigrated {
		migrated[u] = true
	}

	var names []string
	if sel.Batch == "all" {
		names = c.BatchNames()
	} else {
		if _, ok := c.Batches[sel.Batch]; !ok {
			return nil, 0, &CatalogError{
				Reason: fmt.Sprintf("unknown batch %q, valid batches: %s", sel.Batch, strings.Join(c.BatchNames(), ", ")),
			}
		}
		names = []string{sel.Batch}
	}

	for _, name := range names {
		batch := c.Batches[name]
		for _, u := range batch.URLs {
			if migrated[u] {
				skipped++
				continue
			}
			items = append(items, WorkItem{URL: u, Template: batch.Template, Status: StatusPending})
		}
	}

	items = slice(items, sel.Offset, sel.Limit)
	return items, skipped, nil
}

func slice(items []WorkItem, offset, limit int) []WorkItem {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
