// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alphabet defines the per-alphabet constants that parameterise
// the tree-building engine: canonical character vectors (including IUPAC
// ambiguity codes and gap characters), the pairwise unsimilarity matrix,
// and the substitution-model distance correction. Two concrete alphabets
// are provided, DNA and Protein; callers select one at startup and pass
// it as a value into the profile and tree packages rather than relying
// on any process-wide state.
package alphabet

import (
	"fmt"

	"github.com/kortschak/njtree/fterr"
)

// Kind identifies which concrete alphabet an Alphabet value implements.
type Kind int

const (
	DNA Kind = iota
	Protein
)

func (k Kind) String() string {
	switch k {
	case DNA:
		return "dna"
	case Protein:
		return "protein"
	default:
		return "unknown"
	}
}

// Alphabet is an immutable, value-typed description of a sequence
// alphabet: the set of recognised characters, their frequency vectors,
// the pairwise unsimilarity matrix, and the distance correction function.
type Alphabet struct {
	kind    Kind
	letters string
	vectors map[byte][]float64
	gaps    map[byte]bool
	u       [][]float64
	correct func(float64) float64
}

// New returns the concrete Alphabet for kind, constructed the same way
// callers would get it from NewDNA or NewProtein directly. It exists
// so collaborators selecting an alphabet from a runtime value (for
// example a CLI flag) don't need a type switch of their own.
func New(kind Kind) *Alphabet {
	if kind == Protein {
		return NewProtein()
	}
	return NewDNA()
}

// Kind reports which concrete alphabet this value implements.
func (a *Alphabet) Kind() Kind { return a.kind }

// K is the number of canonical characters in the alphabet.
func (a *Alphabet) K() int { return len(a.letters) }

// Letters returns the canonical characters in matrix order.
func (a *Alphabet) Letters() string { return a.letters }

// Vector returns the L1-normalised length-K frequency vector for c. It
// returns fterr.ErrInvalidAlphabet if c is not a recognised character.
func (a *Alphabet) Vector(c byte) ([]float64, error) {
	v, ok := a.vectors[c]
	if !ok {
		return nil, fmt.Errorf("%w: %q not in %s alphabet", fterr.ErrInvalidAlphabet, c, a.kind)
	}
	return v, nil
}

// IsGap reports whether c is a gap character for this alphabet.
func (a *Alphabet) IsGap(c byte) bool { return a.gaps[c] }

// U returns the K×K unsimilarity matrix, indexed in canonical letter
// order. The caller must not mutate the returned slices.
func (a *Alphabet) U() [][]float64 { return a.u }

// Correction applies the alphabet's substitution-model correction to a
// raw fractional distance d, returning +Inf at or beyond the model's
// saturation point.
func (a *Alphabet) Correction(d float64) float64 { return a.correct(d) }

// index returns the column index of letter c in the canonical order, or
// -1 if c is not canonical.
func (a *Alphabet) index(c byte) int {
	for i := 0; i < len(a.letters); i++ {
		if a.letters[i] == c {
			return i
		}
	}
	return -1
}

// normalize returns an L1-normalised copy of v; if v sums to zero it is
// returned unchanged, since such vectors only arise for gap columns that
// are masked out of every distance computation by their ungapped weight.
func normalize(v []float64) []float64 {
	var sum float64
	for _, x := range v {
		sum += x
	}
	out := make([]float64, len(v))
	if sum == 0 {
		copy(out, v)
		return out
	}
	for i, x := range v {
		out[i] = x / sum
	}
	return out
}

// oneHot builds an L1-normalised one-hot vector for canonical index i of
// length k.
func oneHot(k, i int) []float64 {
	v := make([]float64, k)
	v[i] = 1
	return normalize(v)
}

// uniformOver builds an L1-normalised vector with 1s at the given
// canonical indices, used for ambiguity codes that are compatible with
// more than one canonical letter.
func uniformOver(k int, idx ...int) []float64 {
	v := make([]float64, k)
	for _, i := range idx {
		v[i] = 1
	}
	return normalize(v)
}

// allOnes builds the L1-normalised all-ones vector of length k, the
// vector assigned to gap characters. Its actual value never affects a
// distance computation, since gap columns always carry zero ungapped
// weight; a uniform vector is used rather than the zero vector purely so
// that Vector never has to special-case a degenerate return.
func allOnes(k int) []float64 {
	v := make([]float64, k)
	for i := range v {
		v[i] = 1
	}
	return normalize(v)
}
