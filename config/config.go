// SPDX-License-Identifier: MIT

// Package config loads fixture-generation jobs from a YAML or JSON file.
//
// A file holds either a single job (mapping) or a list of jobs (sequence).
// JSON is accepted as-is: every JSON document is valid YAML.
//
// Field names follow the historical config.json spelling
// (matrixSizeRange, diagElemsRange, elementaryTransformsRange, nKeysRange,
// nQsRange, kRange, sizeRange, dataRange, nTests, outputPath).
//
// Validation is eager and structural: required fields present, kind known,
// counts positive. Range semantics (min < max and friends) are checked by the
// generators themselves before any sampling.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrConfiguration marks a missing/invalid configuration or an output
// destination that cannot be prepared. It is fatal for the run.
var ErrConfiguration = errors.New("config: invalid configuration")

// Kind selects the generator a job runs.
type Kind string

const (
	// KindDeterminant produces matrix + determinant fixtures (the default).
	KindDeterminant Kind = "determinant"
	// KindRange produces keys/queries + range-count fixtures.
	KindRange Kind = "range"
	// KindSort produces values + sorted-values fixtures.
	KindSort Kind = "sort"
)

// IntBounds is a half-open integer range [Min, Max).
type IntBounds struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Bounds is a half-open real range [Min, Max). In integer mode both ends
// must be whole numbers.
type Bounds struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Job is one entry of the configuration file.
type Job struct {
	Kind       Kind   `yaml:"kind"`
	Name       string `yaml:"name"`
	OutputPath string `yaml:"outputPath"`
	NTests     int    `yaml:"nTests"`
	Seed       *int64 `yaml:"seed"`
	Clean      bool   `yaml:"clean"`
	Workers    int    `yaml:"workers"`

	// determinant
	MatrixSizeRange           *IntBounds `yaml:"matrixSizeRange"`
	DiagElemsRange            *Bounds    `yaml:"diagElemsRange"`
	ElementaryTransformsRange *IntBounds `yaml:"elementaryTransformsRange"`
	Integer                   *bool      `yaml:"integer"`
	Precision                 *int       `yaml:"precision"`
	Width                     *int       `yaml:"width"`
	Sampling                  string     `yaml:"sampling"`

	// range
	NKeysRange *IntBounds `yaml:"nKeysRange"`
	NQsRange   *IntBounds `yaml:"nQsRange"`
	KRange     *IntBounds `yaml:"kRange"`

	// sort
	SizeRange *IntBounds `yaml:"sizeRange"`
	DataRange *IntBounds `yaml:"dataRange"`

	// baseDir is the directory of the file the job came from; OutputPath is
	// resolved against it.
	baseDir string
}

// Dir returns the output directory: OutputPath, resolved against the
// config file's directory when relative.
func (j Job) Dir() string {
	if filepath.IsAbs(j.OutputPath) || j.baseDir == "" {
		return filepath.Clean(j.OutputPath)
	}
	return filepath.Join(j.baseDir, j.OutputPath)
}

// WithBaseDir returns a copy of j whose relative OutputPath resolves against dir.
func (j Job) WithBaseDir(dir string) Job {
	j.baseDir = dir
	return j
}

// Label names the job in logs and errors.
func (j Job) Label() string {
	if j.Name != "" {
		return string(j.Kind) + "/" + j.Name
	}
	return string(j.Kind) + ":" + j.OutputPath
}

// Validate checks required fields for the job's kind.
//
// Errors:
//   - ErrConfiguration naming the first missing or invalid field.
func (j Job) Validate() error {
	var problems []string
	missing := func(field string) { problems = append(problems, "missing "+field) }

	if strings.TrimSpace(j.OutputPath) == "" {
		missing("outputPath")
	}
	if j.NTests < 1 {
		problems = append(problems, fmt.Sprintf("nTests must be >= 1, got %d", j.NTests))
	}
	if j.Workers < 0 {
		problems = append(problems, fmt.Sprintf("workers must be >= 0, got %d", j.Workers))
	}

	switch j.Kind {
	case KindDeterminant:
		if j.MatrixSizeRange == nil {
			missing("matrixSizeRange")
		}
		if j.DiagElemsRange == nil {
			missing("diagElemsRange")
		}
		if j.ElementaryTransformsRange == nil {
			missing("elementaryTransformsRange")
		}
		if j.Integer == nil {
			missing("integer")
		} else if !*j.Integer && j.Precision == nil {
			missing("precision (required when integer is false)")
		}
		if j.Precision != nil && *j.Precision < 0 {
			problems = append(problems, fmt.Sprintf("precision must be >= 0, got %d", *j.Precision))
		}
		if j.Width != nil && *j.Width < 0 {
			problems = append(problems, fmt.Sprintf("width must be >= 0, got %d", *j.Width))
		}
	case KindRange:
		if j.NKeysRange == nil {
			missing("nKeysRange")
		}
		if j.NQsRange == nil {
			missing("nQsRange")
		}
		if j.KRange == nil {
			missing("kRange")
		}
	case KindSort:
		if j.SizeRange == nil {
			missing("sizeRange")
		}
		if j.DataRange == nil {
			missing("dataRange")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown kind %q", j.Kind))
	}

	if len(problems) > 0 {
		return fmt.Errorf("job %s: %s: %w", j.Label(), strings.Join(problems, "; "), ErrConfiguration)
	}
	return nil
}

// Parse decodes jobs from data. Jobs without a kind default to
// KindDeterminant. Every job is validated.
//
// Errors:
//   - ErrConfiguration for malformed documents, unknown fields or invalid jobs.
func Parse(data []byte) ([]Job, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode: %v: %w", err, ErrConfiguration)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("empty document: %w", ErrConfiguration)
	}

	doc := root.Content[0]
	var jobs []Job
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := decodeStrict(doc, &jobs); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var j Job
		if err := decodeStrict(doc, &j); err != nil {
			return nil, err
		}
		jobs = []Job{j}
	default:
		return nil, fmt.Errorf("line %d: want a job or a list of jobs: %w", doc.Line, ErrConfiguration)
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no jobs: %w", ErrConfiguration)
	}

	for i := range jobs {
		if jobs[i].Kind == "" {
			jobs[i].Kind = KindDeterminant
		}
		jobs[i].Kind = Kind(strings.ToLower(string(jobs[i].Kind)))
		if err := jobs[i].Validate(); err != nil {
			return nil, fmt.Errorf("job #%d: %w", i+1, err)
		}
	}

	return jobs, nil
}

// decodeStrict decodes node into out, rejecting unknown keys so typos in
// field names fail loudly instead of silently using zero values.
func decodeStrict(node *yaml.Node, out interface{}) error {
	b, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Errorf("re-encode: %v: %w", err, ErrConfiguration)
	}
	dec := yaml.NewDecoder(strings.NewReader(string(b)))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode: %v: %w", err, ErrConfiguration)
	}
	return nil
}

// Load reads and parses the file at path. Relative output paths are resolved
// against the directory holding the file.
//
// Errors:
//   - ErrConfiguration when the file is missing, unreadable or invalid.
func Load(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %v: %w", path, err, ErrConfiguration)
	}
	jobs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i := range jobs {
		jobs[i] = jobs[i].WithBaseDir(dir)
	}
	return jobs, nil
}
