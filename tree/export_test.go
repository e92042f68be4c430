// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kortschak/njtree/align"
	"github.com/kortschak/njtree/alphabet"
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

func TestBuildSingleLeaf(t *testing.T) {
	a := alphabet.NewDNA()
	al := mustAlign(t, map[string]string{"s1": "ACGT"}, a)
	b, err := New(al, a, Options{})
	require.NoError(t, err)

	root, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 0, b.Steps())

	exported := b.Export(root)
	require.True(t, exported.IsLeaf())
	require.Equal(t, "s1", exported.Label)
}

func TestBuildIdenticalPairZeroBranches(t *testing.T) {
	a := alphabet.NewDNA()
	al := mustAlign(t, map[string]string{"s1": "ACGT", "s2": "ACGT"}, a)
	b, err := New(al, a, Options{})
	require.NoError(t, err)

	root, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 1, b.Steps())

	exported := b.Export(root)
	require.False(t, exported.IsLeaf())
	require.Equal(t, 0.0, exported.LeftLength)
	require.Equal(t, 0.0, exported.RightLength)
}

func TestBuildMaximallyDivergentPairInfiniteBranches(t *testing.T) {
	a := alphabet.NewDNA()
	al := mustAlign(t, map[string]string{"s1": "ACGT", "s2": "TGCA"}, a)
	b, err := New(al, a, Options{})
	require.NoError(t, err)

	root, err := b.Build()
	require.NoError(t, err)

	exported := b.Export(root)
	require.True(t, math.IsInf(exported.LeftLength, 1))
	require.True(t, math.IsInf(exported.RightLength, 1))
}

func TestBuildFourSequenceCherries(t *testing.T) {
	a := alphabet.NewDNA()
	al := mustAlign(t, map[string]string{
		"s1": "AAAA", "s2": "AAAA",
		"s3": "TTTT", "s4": "TTTT",
	}, a)
	b, err := New(al, a, Options{})
	require.NoError(t, err)

	root, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 3, b.Steps())

	exported := b.Export(root)
	require.False(t, exported.IsLeaf())

	var leaves func(n *ExportedNode) []string
	leaves = func(n *ExportedNode) []string {
		if n.IsLeaf() {
			return []string{n.Label}
		}
		return append(leaves(n.Left), leaves(n.Right)...)
	}
	require.ElementsMatch(t, []string{"s1", "s2", "s3", "s4"}, leaves(exported))
}

func TestBuildFullyGappedColumnAllBranchesZero(t *testing.T) {
	a := alphabet.NewDNA()
	al := mustAlign(t, map[string]string{
		"s1": "A-CG", "s2": "A-CG", "s3": "A-CG",
	}, a)
	b, err := New(al, a, Options{})
	require.NoError(t, err)

	root, err := b.Build()
	require.NoError(t, err)

	var walk func(n *ExportedNode)
	walk = func(n *ExportedNode) {
		if n.IsLeaf() {
			return
		}
		require.Equal(t, 0.0, n.LeftLength)
		require.Equal(t, 0.0, n.RightLength)
		walk(n.Left)
		walk(n.Right)
	}
	walk(b.Export(root))
}

func TestActiveSetShrinksByOnePerStep(t *testing.T) {
	a := alphabet.NewDNA()
	al := mustAlign(t, map[string]string{
		"s1": "AAAA", "s2": "AACA", "s3": "TTTT", "s4": "TTGT", "s5": "CCCC",
	}, a)
	b, err := New(al, a, Options{})
	require.NoError(t, err)

	n := b.NumActive()
	for b.NumActive() > 1 {
		before := b.NumActive()
		_, err := b.Step()
		require.NoError(t, err)
		require.Equal(t, before-1, b.NumActive())
	}
	require.Equal(t, n-1, b.Steps())
}
