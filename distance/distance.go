// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distance implements the gap-aware profile distance function
// and its substitution-model correction.
package distance

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/kortschak/njtree/alphabet"
	"github.com/kortschak/njtree/profile"
)

// uMatrix packs a's unsimilarity matrix into a gonum Dense so its rows
// can be pulled with mat.Row, the same storage profile.Profile itself
// uses for its column data.
func uMatrix(a *alphabet.Alphabet) *mat.Dense {
	rows := a.U()
	k := len(rows)
	flat := make([]float64, 0, k*k)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return mat.NewDense(k, k, flat)
}

// Uncorrected computes the raw, gap-aware distance between two
// profiles: for each column j, d_j = p1col^T * U * p2col, weighted by
// w_j = p1.ungapped[j] * p2.ungapped[j] and averaged over columns with
// nonzero weight. Returns 0 when the profiles share no non-gap column,
// since there is no evidence on which to base a distance.
func Uncorrected(p1, p2 *profile.Profile, a *alphabet.Alphabet) float64 {
	u := uMatrix(a)
	k := a.K()
	l := p1.L()

	u1 := p1.Ungapped()
	u2 := p2.Ungapped()

	col1 := make([]float64, k)
	col2 := make([]float64, k)
	uCol := make([]float64, k)
	row := make([]float64, k)

	var weightedSum, weightSum float64
	for j := 0; j < l; j++ {
		w := u1[j] * u2[j]
		if w == 0 {
			continue
		}
		col1 = p1.Column(j, col1)
		col2 = p2.Column(j, col2)
		for i := 0; i < k; i++ {
			row = mat.Row(row, i, u)
			uCol[i] = floats.Dot(row, col2)
		}
		weightedSum += floats.Dot(col1, uCol) * w
		weightSum += w
	}
	if weightSum == 0 {
		return 0
	}
	return weightedSum / weightSum
}

// Corrected applies a's substitution-model correction to the raw
// distance between p1 and p2.
func Corrected(p1, p2 *profile.Profile, a *alphabet.Alphabet) float64 {
	return a.Correction(Uncorrected(p1, p2, a))
}
