// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fterr defines the sentinel error kinds shared across the
// tree-building engine and its collaborators.
package fterr

import "errors"

// Sentinel error kinds. Wrap with fmt.Errorf("...: %w", Err...) to add
// context while keeping errors.Is comparisons working.
var (
	// ErrInvalidAlignment indicates sequences of unequal length, an
	// empty alignment, or an empty label.
	ErrInvalidAlignment = errors.New("njtree: invalid alignment")

	// ErrInvalidAlphabet indicates a character outside the selected
	// alphabet's recognised set.
	ErrInvalidAlphabet = errors.New("njtree: invalid alphabet character")

	// ErrInvalidArgument indicates a non-positive sample size or other
	// malformed collaborator argument.
	ErrInvalidArgument = errors.New("njtree: invalid argument")
)
