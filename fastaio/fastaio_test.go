// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastaio

import (
	"bytes"
	"strings"
	"testing"

	bioalphabet "github.com/biogo/biogo/alphabet"
	"github.com/stretchr/testify/require"

	njalphabet "github.com/kortschak/njtree/alphabet"
)

const testFasta = ">s1 description\nACGT\n>s2\nTGCA\n"

func TestReadAlignment(t *testing.T) {
	labels, seqs, err := ReadAlignment(strings.NewReader(testFasta), bioalphabet.DNAgapped)
	require.NoError(t, err)
	require.Equal(t, []string{"s1", "s2"}, labels)
	require.Equal(t, "ACGT", seqs["s1"])
	require.Equal(t, "TGCA", seqs["s2"])
}

func TestReadAlignmentRejectsEmpty(t *testing.T) {
	_, _, err := ReadAlignment(strings.NewReader(""), bioalphabet.DNAgapped)
	require.Error(t, err)
}

func TestWriteFastaRoundTrip(t *testing.T) {
	labels := []string{"s1", "s2"}
	seqs := map[string]string{"s1": "ACGT", "s2": "TGCA"}
	var buf bytes.Buffer
	require.NoError(t, WriteFasta(&buf, labels, seqs, bioalphabet.DNAgapped))

	gotLabels, gotSeqs, err := ReadAlignment(&buf, bioalphabet.DNAgapped)
	require.NoError(t, err)
	require.Equal(t, labels, gotLabels)
	require.Equal(t, seqs, gotSeqs)
}

func TestBiogoAlphabetSelection(t *testing.T) {
	require.Equal(t, bioalphabet.DNAgapped, BiogoAlphabet(njalphabet.DNA))
	require.Equal(t, bioalphabet.Protein, BiogoAlphabet(njalphabet.Protein))
}
