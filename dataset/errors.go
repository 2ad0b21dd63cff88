// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set.
//
// ErrConfiguration is the config package's sentinel, re-exported so callers
// of the orchestrator need a single import for errors.Is checks.

package dataset

import (
	"errors"

	"github.com/katalvlaran/fixturegen/config"
)

var (
	// ErrConfiguration indicates a missing/invalid configuration or an output
	// directory that cannot be prepared.
	ErrConfiguration = config.ErrConfiguration

	// ErrStorage indicates a failure persisting a fixture artifact.
	ErrStorage = errors.New("dataset: storage failure")

	// ErrMismatch indicates a stored answer that disagrees with a recomputation.
	ErrMismatch = errors.New("dataset: answer mismatch")
)
