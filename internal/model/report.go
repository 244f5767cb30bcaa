// Package model defines the core data structures for themelink.
package model

import (
	"crypto/rand"
	"fmt"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
)

// Report summarises one linking pass over the theme pages.
type Report struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	DryRun    bool          `json:"dry_run" yaml:"dry_run"`

	Files    []FileReport `json:"files" yaml:"files"`                         // Every page processed, in order
	Total    int          `json:"total" yaml:"total"`                         // Links added across all pages
	Missing  []string     `json:"missing,omitempty" yaml:"missing,omitempty"` // Sorted, unique image file names
	Failures []Failure    `json:"failures,omitempty" yaml:"failures,omitempty"`

	missingSet map[string]bool
}

// FileReport is the outcome for one theme page.
type FileReport struct {
	Path    string   `json:"path" yaml:"path"`
	Name    string   `json:"name" yaml:"name"`
	Links   int      `json:"links" yaml:"links"`
	Missing []string `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// Failure records a page that could not be read or written.
type Failure struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`
}

// NewReport creates an empty report with a fresh run ID.
func NewReport(dryRun bool) (*Report, error) {
	now := time.Now()
	id, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate run ID: %w", err)
	}

	return &Report{
		RunID:      id.String(),
		StartedAt:  now,
		DryRun:     dryRun,
		missingSet: make(map[string]bool),
	}, nil
}

// AddFile records the result for a page and folds its missing images into
// the run-wide set.
func (r *Report) AddFile(fr FileReport) {
	if r.missingSet == nil {
		r.missingSet = make(map[string]bool)
	}

	r.Files = append(r.Files, fr)
	r.Total += fr.Links

	for _, name := range fr.Missing {
		if r.missingSet[name] {
			continue
		}
		r.missingSet[name] = true
		r.Missing = append(r.Missing, name)
	}
	sort.Strings(r.Missing)
}

// AddFailure records a page that failed.
func (r *Report) AddFailure(path string, err error) {
	r.Failures = append(r.Failures, Failure{Path: path, Error: err.Error()})
}

// Finish stamps the run duration.
func (r *Report) Finish() {
	r.Duration = time.Since(r.StartedAt)
}

// Linked returns the pages that had at least one link added.
func (r *Report) Linked() []FileReport {
	var out []FileReport
	for _, f := range r.Files {
		if f.Links > 0 {
			out = append(out, f)
		}
	}
	return out
}

// Failed reports whether any page failed.
func (r *Report) Failed() bool {
	return len(r.Failures) > 0
}
