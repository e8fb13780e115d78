// Package content loads the site's JSON content files (profile, case
// studies, metrics) and validates them against their schemas at startup.
// Content is read once and served read-only.
package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/daniel/portfolio-site/internal/schemas"
)

// Content file names expected inside the content directory.
const (
	ProfileFile     = "profile.json"
	CaseStudiesFile = "case_studies.json"
	MetricsFile     = "metrics.json"
)

// Store holds the validated raw JSON documents for the site surface.
type Store struct {
	profile     json.RawMessage
	caseStudies json.RawMessage
	metrics     json.RawMessage
}

// LoadError describes a content file that failed to load or validate.
type LoadError struct {
	File  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load content file %s: %v", e.File, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads all content files from dir, validating each against its
// schema. All three files are required.
func Load(dir string) (*Store, error) {
	store := &Store{}

	files := []struct {
		name   string
		schema string
		target *json.RawMessage
	}{
		{ProfileFile, "schemas/profile.schema.json", &store.profile},
		{CaseStudiesFile, "schemas/case_studies.schema.json", &store.caseStudies},
		{MetricsFile, "schemas/metrics.schema.json", &store.metrics},
	}

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.name))
		if err != nil {
			return nil, &LoadError{File: f.name, Cause: err}
		}
		schemaPath := schemas.ResolveSchemaPath(f.schema)
		if schemaPath == "" {
			return nil, &LoadError{File: f.name, Cause: fmt.Errorf("schema not found: %s", f.schema)}
		}
		if err := schemas.ValidateJSONBytes(schemaPath, data); err != nil {
			return nil, &LoadError{File: f.name, Cause: err}
		}
		*f.target = json.RawMessage(data)
	}

	return store, nil
}

// Profile returns the raw profile document.
func (s *Store) Profile() json.RawMessage { return s.profile }

// CaseStudies returns the raw case studies document.
func (s *Store) CaseStudies() json.RawMessage { return s.caseStudies }

// Metrics returns the raw metrics document.
func (s *Store) Metrics() json.RawMessage { return s.metrics }
