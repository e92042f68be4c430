// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alphabet

import "math"

const dnaLetters = "ACGT"

// NewDNA returns the DNA alphabet: four canonical bases, IUPAC ambiguity
// codes mapped to uniform distributions over their compatible bases, gap
// characters '-' and '.' mapped to the all-ones vector, a 0/1
// unsimilarity matrix, and Jukes-Cantor distance correction.
func NewDNA() *Alphabet {
	a := idx(dnaLetters)
	k := len(dnaLetters)

	vectors := map[byte][]float64{
		'A': oneHot(k, a['A']),
		'C': oneHot(k, a['C']),
		'G': oneHot(k, a['G']),
		'T': oneHot(k, a['T']),
		'U': oneHot(k, a['T']),
		'R': uniformOver(k, a['A'], a['G']),
		'Y': uniformOver(k, a['C'], a['T']),
		'K': uniformOver(k, a['G'], a['T']),
		'M': uniformOver(k, a['A'], a['C']),
		'S': uniformOver(k, a['C'], a['G']),
		'W': uniformOver(k, a['A'], a['T']),
		'B': uniformOver(k, a['C'], a['G'], a['T']),
		'D': uniformOver(k, a['A'], a['G'], a['T']),
		'H': uniformOver(k, a['A'], a['C'], a['T']),
		'V': uniformOver(k, a['A'], a['C'], a['G']),
		'N': uniformOver(k, a['A'], a['C'], a['G'], a['T']),
		'-': allOnes(k),
		'.': allOnes(k),
	}
	gaps := map[byte]bool{'-': true, '.': true}

	u := make([][]float64, k)
	for i := range u {
		u[i] = make([]float64, k)
		for j := range u[i] {
			if i != j {
				u[i][j] = 1
			}
		}
	}

	return &Alphabet{
		kind:    DNA,
		letters: dnaLetters,
		vectors: vectors,
		gaps:    gaps,
		u:       u,
		correct: jukesCantor,
	}
}

// jukesCantor is the Jukes-Cantor correction for a raw fractional
// distance over a 4-letter alphabet, saturating to +Inf at d >= 0.75.
func jukesCantor(d float64) float64 {
	if d >= 0.75 {
		return math.Inf(1)
	}
	return -0.75 * math.Log(1-(4.0/3.0)*d)
}

// idx builds a letter->column index map from an ordered canonical string.
func idx(letters string) map[byte]int {
	m := make(map[byte]int, len(letters))
	for i := 0; i < len(letters); i++ {
		m[letters[i]] = i
	}
	return m
}
