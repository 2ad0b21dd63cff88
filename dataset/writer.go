// SPDX-License-Identifier: MIT
// Package dataset - fixture persistence.
//
// A fixture is a pair of text files in one directory:
//
//	<name><NNN>.dat      input
//	<name><NNN>.dat.ans  expected answer
//
// NNN is the 1-based case index zero-padded to three digits (wider indices
// are printed in full).

package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/fixturegen/fixture"
)

const (
	// InputExt is the input file suffix.
	InputExt = ".dat"
	// AnswerExt is appended to the input file name for the answer file.
	AnswerExt = ".ans"

	filePerm = 0o644
	dirPerm  = 0o755
)

// Writer persists one fixture. Implementations must be safe for concurrent
// Save calls with distinct indices.
type Writer interface {
	Save(ctx context.Context, index int, tc fixture.TestCase) error
}

// FileNames returns the input and answer base names for case index.
func FileNames(name string, index int) (input, answer string) {
	input = fmt.Sprintf("%s%03d%s", name, index, InputExt)
	return input, input + AnswerExt
}

// DirWriter writes fixtures into a directory.
type DirWriter struct {
	dir  string
	name string
}

var _ Writer = (*DirWriter)(nil)

// NewDirWriter prepares dir (creating it, and emptying it first when clean
// is set) and returns a writer producing files prefixed with name.
//
// Errors:
//   - ErrConfiguration when dir is empty or cannot be prepared.
func NewDirWriter(dir, name string, clean bool) (*DirWriter, error) {
	if dir == "" {
		return nil, fmt.Errorf("NewDirWriter: empty output directory: %w", ErrConfiguration)
	}
	if clean {
		if err := os.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("NewDirWriter: clean %s: %v: %w", dir, err, ErrConfiguration)
		}
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("NewDirWriter: create %s: %v: %w", dir, err, ErrConfiguration)
	}

	return &DirWriter{dir: dir, name: name}, nil
}

// Dir returns the output directory.
func (w *DirWriter) Dir() string { return w.dir }

// Save writes the input file and then the answer file of case index.
//
// Errors:
//   - ctx.Err() when ctx is already done.
//   - ErrStorage wrapping the underlying I/O failure.
func (w *DirWriter) Save(ctx context.Context, index int, tc fixture.TestCase) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	in, ans := FileNames(w.name, index)
	if err := os.WriteFile(filepath.Join(w.dir, in), []byte(tc.Input), filePerm); err != nil {
		return fmt.Errorf("Save(%d): %v: %w", index, err, ErrStorage)
	}
	if err := os.WriteFile(filepath.Join(w.dir, ans), []byte(tc.Answer), filePerm); err != nil {
		return fmt.Errorf("Save(%d): %v: %w", index, err, ErrStorage)
	}

	return nil
}
