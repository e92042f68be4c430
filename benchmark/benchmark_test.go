// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmark

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kortschak/njtree/align"
	"github.com/kortschak/njtree/alphabet"
	"github.com/kortschak/njtree/tree"
)

func mustAlign(t *testing.T, seqs map[string]string, a *alphabet.Alphabet) *align.Alignment {
	t.Helper()
	labels := make([]string, 0, len(seqs))
	for l := range seqs {
		labels = append(labels, l)
	}
	al, err := align.New(labels, seqs, a)
	require.NoError(t, err)
	return al
}

func leaves(n *tree.ExportedNode) []string {
	if n.IsLeaf() {
		return []string{n.Label}
	}
	return append(leaves(n.Left), leaves(n.Right)...)
}

func TestNaiveNeighborJoiningSingleSequence(t *testing.T) {
	a := alphabet.NewDNA()
	al := mustAlign(t, map[string]string{"s1": "ACGT"}, a)
	root, err := NaiveNeighborJoining(al, a)
	require.NoError(t, err)
	require.True(t, root.IsLeaf())
	require.Equal(t, "s1", root.Label)
}

func TestNaiveNeighborJoiningMaximalDivergence(t *testing.T) {
	a := alphabet.NewDNA()
	al := mustAlign(t, map[string]string{"s1": "ACGT", "s2": "TGCA"}, a)
	root, err := NaiveNeighborJoining(al, a)
	require.NoError(t, err)
	require.True(t, math.IsInf(root.LeftLength, 1))
}

func TestNaiveNeighborJoiningLeafSet(t *testing.T) {
	a := alphabet.NewDNA()
	al := mustAlign(t, map[string]string{
		"s1": "AAAA", "s2": "AACA", "s3": "TTTT", "s4": "TTGT", "s5": "CCCC",
	}, a)
	root, err := NaiveNeighborJoining(al, a)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"s1", "s2", "s3", "s4", "s5"}, leaves(root))
}

func TestRandomJoiningLeafSet(t *testing.T) {
	a := alphabet.NewDNA()
	al := mustAlign(t, map[string]string{
		"s1": "AAAA", "s2": "AACA", "s3": "TTTT", "s4": "TTGT", "s5": "CCCC",
	}, a)
	rng := rand.New(rand.NewSource(1))
	root, err := RandomJoining(al, a, rng)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"s1", "s2", "s3", "s4", "s5"}, leaves(root))
}

func TestRandomJoiningSingleSequence(t *testing.T) {
	a := alphabet.NewDNA()
	al := mustAlign(t, map[string]string{"s1": "ACGT"}, a)
	root, err := RandomJoining(al, a, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.True(t, root.IsLeaf())
}
