// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kortschak/njtree/alphabet"
	"github.com/kortschak/njtree/profile"
)

func mustLeaf(t *testing.T, s string, a *alphabet.Alphabet) *Info {
	t.Helper()
	p, err := profile.FromAlignedString(s, a)
	require.NoError(t, err)
	return Leaf(p)
}

func TestDistanceLeafZeroUpDistance(t *testing.T) {
	a := alphabet.NewDNA()
	n1 := mustLeaf(t, "ACGT", a)
	n2 := mustLeaf(t, "TGCA", a)
	require.InDelta(t, 1.0, Distance(n1, n2, a), 1e-9)
}

func TestJoinIdenticalVarianceSplitsEvenly(t *testing.T) {
	a := alphabet.NewDNA()
	n1 := mustLeaf(t, "ACGT", a)
	n2 := mustLeaf(t, "TGCA", a)
	d := Distance(n1, n2, a)
	parent, lb, rb, err := Join(n1, n2, d, a)
	require.NoError(t, err)
	require.InDelta(t, d/2, lb, 1e-9)
	require.InDelta(t, d/2, rb, 1e-9)
	require.Equal(t, 2, parent.Profile.NumSequences())
}

func TestJoinZeroDistanceHasZeroUpDistance(t *testing.T) {
	a := alphabet.NewDNA()
	n1 := mustLeaf(t, "ACGT", a)
	n2 := mustLeaf(t, "ACGT", a)
	parent, lb, rb, err := Join(n1, n2, 0, a)
	require.NoError(t, err)
	require.Equal(t, 0.0, lb)
	require.Equal(t, 0.0, rb)
	require.Equal(t, 0.0, parent.UpDistance)
}

func TestJoinAsymmetricVarianceFavoursLowerVariance(t *testing.T) {
	a := alphabet.NewDNA()
	n1 := mustLeaf(t, "ACGT", a)
	n2 := mustLeaf(t, "TGCA", a)
	n1.Variance = 0
	n2.Variance = 1
	d := Distance(n1, n2, a)
	parent, lb, rb, err := Join(n1, n2, d, a)
	require.NoError(t, err)
	// lower-variance side (n1) should get a larger alpha, hence a
	// larger share of the branch split attributed to it.
	require.Greater(t, lb, rb)
	// alpha clamps to 1 here, so the parent inherits only n1's zero
	// variance.
	require.Equal(t, 0.0, parent.Variance)
}
