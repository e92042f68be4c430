// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alphabet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDNAVectorsNormalised(t *testing.T) {
	a := NewDNA()
	for _, c := range []byte("ACGTURYKMSWBDHVN-.") {
		v, err := a.Vector(c)
		require.NoError(t, err, "character %q", c)
		var sum float64
		for _, x := range v {
			sum += x
		}
		if sum != 0 {
			require.InDelta(t, 1.0, sum, 1e-9, "character %q", c)
		}
	}
}

func TestDNAAmbiguityPartialMatch(t *testing.T) {
	a := NewDNA()
	r, _ := a.Vector('R')
	require.InDeltaSlice(t, []float64{0.5, 0, 0.5, 0}, r, 1e-9)
}

func TestDNAUnsimilarityMatrix(t *testing.T) {
	a := NewDNA()
	u := a.U()
	for i := range u {
		for j := range u[i] {
			if i == j {
				require.Equal(t, 0.0, u[i][j])
			} else {
				require.Equal(t, 1.0, u[i][j])
			}
		}
	}
}

func TestDNAInvalidCharacter(t *testing.T) {
	a := NewDNA()
	_, err := a.Vector('Z')
	require.Error(t, err)
}

func TestJukesCantorSaturates(t *testing.T) {
	require.True(t, math.IsInf(jukesCantor(0.75), 1))
	require.True(t, math.IsInf(jukesCantor(0.9), 1))
	require.False(t, math.IsInf(jukesCantor(0.5), 1))
}

func TestJukesCantorMonotone(t *testing.T) {
	prev := jukesCantor(0)
	for d := 0.01; d < 0.75; d += 0.01 {
		cur := jukesCantor(d)
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestProteinUnsimilarityDiagonalZero(t *testing.T) {
	a := NewProtein()
	u := a.U()
	for i := range u {
		require.Equal(t, 0.0, u[i][i])
		for j := range u[i] {
			require.GreaterOrEqual(t, u[i][j], 0.0)
			require.LessOrEqual(t, u[i][j], 1.0)
		}
	}
}

func TestProteinGapIsAllOnesNormalised(t *testing.T) {
	a := NewProtein()
	v, err := a.Vector('-')
	require.NoError(t, err)
	want := 1.0 / float64(a.K())
	for _, x := range v {
		require.InDelta(t, want, x, 1e-9)
	}
	require.True(t, a.IsGap('-'))
	require.True(t, a.IsGap('.'))
	require.True(t, a.IsGap('*'))
}

func TestProteinCorrectionSaturates(t *testing.T) {
	require.True(t, math.IsInf(proteinCorrection(1), 1))
	require.False(t, math.IsInf(proteinCorrection(0.99), 1))
}
