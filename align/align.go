// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package align validates a multiple sequence alignment before it is
// handed to the tree-building engine: equal sequence length, non-empty
// labels, and characters drawn from the selected alphabet.
package align

import (
	"fmt"
	"sort"

	"github.com/kortschak/njtree/alphabet"
	"github.com/kortschak/njtree/fterr"
)

// Alignment is a validated multiple sequence alignment: every sequence
// has the same length, every label is unique and non-empty, and every
// character is recognised by the selected alphabet.
type Alignment struct {
	Labels    []string // insertion order, stable for deterministic output
	Sequences map[string]string
	Length    int
}

// New validates seqs against alpha and returns an Alignment. labels
// fixes iteration order; it must contain exactly the keys of seqs.
// Returns fterr.ErrInvalidAlignment for an empty alignment, unequal
// lengths, an empty label, or a label listed twice, and
// fterr.ErrInvalidAlphabet for an unrecognised character.
func New(labels []string, seqs map[string]string, alpha *alphabet.Alphabet) (*Alignment, error) {
	if len(seqs) == 0 {
		return nil, fmt.Errorf("%w: empty alignment", fterr.ErrInvalidAlignment)
	}
	if len(labels) != len(seqs) {
		return nil, fmt.Errorf("%w: label list does not match sequence set", fterr.ErrInvalidAlignment)
	}

	var length int
	first := true
	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		if label == "" {
			return nil, fmt.Errorf("%w: empty label", fterr.ErrInvalidAlignment)
		}
		if seen[label] {
			return nil, fmt.Errorf("%w: duplicate label %q", fterr.ErrInvalidAlignment, label)
		}
		seen[label] = true
		s, ok := seqs[label]
		if !ok {
			return nil, fmt.Errorf("%w: label %q missing sequence", fterr.ErrInvalidAlignment, label)
		}
		if first {
			length = len(s)
			first = false
		} else if len(s) != length {
			return nil, fmt.Errorf("%w: sequence %q has length %d, want %d", fterr.ErrInvalidAlignment, label, len(s), length)
		}
		for j := 0; j < len(s); j++ {
			if _, err := alpha.Vector(s[j]); err != nil {
				return nil, fmt.Errorf("align: sequence %q: %w", label, err)
			}
		}
	}

	return &Alignment{
		Labels:    append([]string(nil), labels...),
		Sequences: seqs,
		Length:    length,
	}, nil
}

// SortedLabels returns Labels sorted lexically, useful for callers that
// want deterministic output independent of input order.
func (a *Alignment) SortedLabels() []string {
	out := append([]string(nil), a.Labels...)
	sort.Strings(out)
	return out
}
