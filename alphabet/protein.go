// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alphabet

import "math"

const proteinLetters = blosum45Letters

// NewProtein returns the protein alphabet: the 20 canonical amino acids
// in BLOSUM45 order, extended-ambiguity codes B/J/Z mapped to uniform
// pairs, X and the gap characters '-', '.', '*' mapped to the all-ones
// vector, a BLOSUM45-derived unsimilarity matrix, and the protein
// distance correction.
func NewProtein() *Alphabet {
	a := idx(proteinLetters)
	k := len(proteinLetters)

	vectors := make(map[byte][]float64, len(proteinLetters)+6)
	for i := 0; i < k; i++ {
		vectors[proteinLetters[i]] = oneHot(k, i)
	}
	vectors['B'] = uniformOver(k, a['N'], a['D'])
	vectors['J'] = uniformOver(k, a['I'], a['L'])
	vectors['Z'] = uniformOver(k, a['Q'], a['E'])
	vectors['X'] = allOnes(k)
	vectors['-'] = allOnes(k)
	vectors['.'] = allOnes(k)
	vectors['*'] = allOnes(k)

	gaps := map[byte]bool{'-': true, '.': true, '*': true}

	return &Alphabet{
		kind:    Protein,
		letters: proteinLetters,
		vectors: vectors,
		gaps:    gaps,
		u:       blosum45Unsimilarity(),
		correct: proteinCorrection,
	}
}

// proteinCorrection is the protein distance correction, derived from a
// BLOSUM45 unsimilarity scale, saturating to +Inf at d >= 1.
func proteinCorrection(d float64) float64 {
	if d >= 1 {
		return math.Inf(1)
	}
	return -1.3 * math.Log(1-d)
}
