// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile implements the column-wise character-frequency
// representation shared by every leaf and internal node in a tree
// build: a K×L matrix of non-negative frequencies backed by
// gonum.org/v1/gonum/mat, a per-column ungapped weight, and the count of
// original sequences folded into the profile.
package profile

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/kortschak/njtree/alphabet"
	"github.com/kortschak/njtree/fterr"
)

// Profile is a K×L column-wise frequency matrix plus per-column ungapped
// weight and sequence count. Once built, a Profile is never mutated;
// joins always produce a new Profile.
type Profile struct {
	p             *mat.Dense // K x L
	ungapped      []float64  // length L, in [0,1]
	numSequences  int
	k, l          int
}

// K is the alphabet size (matrix row count).
func (p *Profile) K() int { return p.k }

// L is the profile length (matrix column count).
func (p *Profile) L() int { return p.l }

// NumSequences is the number of original leaf sequences folded into
// this profile.
func (p *Profile) NumSequences() int { return p.numSequences }

// Ungapped returns the per-column non-gap weight. The caller must not
// mutate the returned slice.
func (p *Profile) Ungapped() []float64 { return p.ungapped }

// Column copies column j into dst, resizing it if necessary, and
// returns it.
func (p *Profile) Column(j int, dst []float64) []float64 {
	if cap(dst) < p.k {
		dst = make([]float64, p.k)
	}
	dst = dst[:p.k]
	mat.Col(dst, j, p.p)
	return dst
}

// FromAlignedString builds a leaf Profile from a single aligned
// sequence. Every character of s is looked up in alpha's recognised
// vocabulary; an unrecognised character yields fterr.ErrInvalidAlphabet.
func FromAlignedString(s string, alpha *alphabet.Alphabet) (*Profile, error) {
	l := len(s)
	k := alpha.K()
	data := make([]float64, k*l)
	ungapped := make([]float64, l)
	for j := 0; j < l; j++ {
		c := s[j]
		v, err := alpha.Vector(c)
		if err != nil {
			return nil, fmt.Errorf("profile: column %d: %w", j, err)
		}
		for i := 0; i < k; i++ {
			data[i*l+j] = v[i]
		}
		if !alpha.IsGap(c) {
			ungapped[j] = 1
		}
	}
	return &Profile{
		p:            mat.NewDense(k, l, data),
		ungapped:     ungapped,
		numSequences: 1,
		k:            k,
		l:            l,
	}, nil
}

// WeightedJoin combines p1 and p2 column-wise with weights w1, w2,
// producing the profile of their merged node. If w1 and w2 are both
// zero, both are treated as 1. Columns with no contributing ungapped
// mass fall back to the uniform vector so they remain neutral in later
// distance computations.
func WeightedJoin(p1, p2 *Profile, w1, w2 float64) (*Profile, error) {
	if p1.k != p2.k || p1.l != p2.l {
		return nil, fmt.Errorf("%w: profile join: mismatched shapes", fterr.ErrInvalidAlignment)
	}
	if w1 == 0 && w2 == 0 {
		w1, w2 = 1, 1
	}
	k, l := p1.k, p1.l

	data := make([]float64, k*l)
	ungapped := make([]float64, l)
	uniform := 1 / float64(k)

	n1 := float64(p1.numSequences)
	n2 := float64(p2.numSequences)
	denom := w1*n1 + w2*n2

	col1 := make([]float64, k)
	col2 := make([]float64, k)
	f := make([]float64, k)
	for j := 0; j < l; j++ {
		mat.Col(col1, j, p1.p)
		mat.Col(col2, j, p2.p)

		u1 := p1.ungapped[j]
		u2 := p2.ungapped[j]
		w1j := w1 * u1 * n1
		w2j := w2 * u2 * n2

		copy(f, col1)
		floats.Scale(w1j, f)
		tmp := make([]float64, k)
		copy(tmp, col2)
		floats.Scale(w2j, tmp)
		floats.Add(f, tmp)

		c := floats.Sum(f)
		if c > 0 {
			floats.Scale(1/c, f)
			for i := 0; i < k; i++ {
				data[i*l+j] = f[i]
			}
		} else {
			for i := 0; i < k; i++ {
				data[i*l+j] = uniform
			}
		}
		if denom > 0 {
			ungapped[j] = c / denom
		}
	}

	return &Profile{
		p:            mat.NewDense(k, l, data),
		ungapped:     ungapped,
		numSequences: p1.numSequences + p2.numSequences,
		k:            k,
		l:            l,
	}, nil
}
