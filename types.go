package main

import (
	"fmt"
	"time"
)

// Template identifiers. The set is closed: every batch in the catalog binds
// its URLs to exactly one of these, and the registry has one entry per id.
const (
	TemplateBlogArticle      = "blog-article"
	TemplateGatedResource    = "gated-resource"
	TemplateCaseStudy        = "case-study"
	TemplateSolutionsPage    = "solutions-page"
	TemplateBuiltForAudience = "built-for-audience"
	TemplateCompanyUtility   = "company-utility"
)

// DefaultTemplate is used for --url invocations whose URL appears in no
// catalog batch. It makes no structural assumptions beyond a main region.
const DefaultTemplate = TemplateCompanyUtility

// TemplateIDs lists every recognized template id, in registration order.
var TemplateIDs = []string{
	TemplateBlogArticle,
	TemplateGatedResource,
	TemplateCaseStudy,
	TemplateSolutionsPage,
	TemplateBuiltForAudience,
	TemplateCompanyUtility,
}

// WorkStatus is the lifecycle state of a single catalog URL within a run.
type WorkStatus string

const (
	StatusPending WorkStatus = "pending"
	StatusSuccess WorkStatus = "success"
	StatusFailed  WorkStatus = "failed"
	StatusSkipped WorkStatus = "skipped"
)

// WorkItem is one URL bound to its template for the duration of a run. The
// binding is fixed at catalog expansion time and never changes.
type WorkItem struct {
	URL      string
	Template string
	Status   WorkStatus
}

// RunError records one non-fatal per-URL failure.
type RunError struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// RunReport summarizes one invocation. It is appended to per WorkItem while
// the run is in flight and written to disk exactly once at the end.
type RunReport struct {
	RunID      string     `json:"runId"`
	Timestamp  time.Time  `json:"timestamp"`
	Total      int        `json:"total"`
	Success    int        `json:"success"`
	Failed     int        `json:"failed"`
	Skipped    int        `json:"skipped"`
	DurationMs int64      `json:"durationMs"`
	Errors     []RunError `json:"errors"`
}

// FetchError is a transport failure, a timed-out request, or a non-success
// final status after redirects.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError means the structural anchor for the bound template was not
// found. Missing optional fields never produce one.
type ParseError struct {
	URL      string
	Template string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s as %s: %s", e.URL, e.Template, e.Reason)
}

// SerializationError means the generated markdown fell below the configured
// minimum length, indicating a parser that silently produced nothing useful.
type SerializationError struct {
	URL    string
	Length int
	Floor  int
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize %s: %d chars, below the %d char floor", e.URL, e.Length, e.Floor)
}

// WriteError is a filesystem failure at the final write step.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// CatalogError is the only fatal error kind: missing/malformed catalog file
// or an unknown batch name. It aborts before any network activity.
type CatalogError struct {
	Reason string
	Err    error
}

func (e *CatalogError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("catalog: %s", e.Reason)
}

func (e *CatalogError) Unwrap() error { return e.Err }
