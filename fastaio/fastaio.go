// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fastaio reads and writes the FASTA alignments that form the
// tree-building engine's only file format, built on biogo's sequence
// I/O the same way the teacher's read/write loops are.
package fastaio

import (
	"fmt"
	"io"

	bioalphabet "github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	njalphabet "github.com/kortschak/njtree/alphabet"
)

// BiogoAlphabet returns the biogo alphabet template matching kind, used
// to seed the fasta.Reader/linear.Seq scaffolding that drives a scan.
func BiogoAlphabet(kind njalphabet.Kind) bioalphabet.Alphabet {
	if kind == njalphabet.Protein {
		return bioalphabet.Protein
	}
	return bioalphabet.DNAgapped
}

// ReadAlignment scans a FASTA file from r, returning labels in file
// order and a label->sequence map. Duplicate labels are rejected; all
// other validation (equal length, recognised characters) is left to
// the align package, which is the single source of truth for alignment
// legality.
func ReadAlignment(r io.Reader, alpha bioalphabet.Alphabet) (labels []string, seqs map[string]string, err error) {
	seqs = make(map[string]string)
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alpha)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		name := s.Name()
		if name == "" {
			return nil, nil, fmt.Errorf("fastaio: record %d has no name", len(labels)+1)
		}
		if _, dup := seqs[name]; dup {
			return nil, nil, fmt.Errorf("fastaio: duplicate label %q", name)
		}
		seqs[name] = s.Seq.String()
		labels = append(labels, name)
	}
	if err := sc.Error(); err != nil {
		return nil, nil, fmt.Errorf("fastaio: %w", err)
	}
	if len(labels) == 0 {
		return nil, nil, fmt.Errorf("fastaio: no records found")
	}
	return labels, seqs, nil
}

// WriteFasta writes labels, in the given order, and their sequences
// from seqs to w as 60-column wrapped FASTA records, matching the
// teacher's "%60a" output verb.
func WriteFasta(w io.Writer, labels []string, seqs map[string]string, alpha bioalphabet.Alphabet) error {
	for _, label := range labels {
		s := linear.NewSeq(label, bioalphabet.BytesToLetters([]byte(seqs[label])), alpha)
		if _, err := fmt.Fprintf(w, "%60a\n", s); err != nil {
			return fmt.Errorf("fastaio: writing %q: %w", label, err)
		}
	}
	return nil
}
