// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fasta-sample writes a uniformly random subset of records from a
// FASTA file, in their original order, to a new FASTA file.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"time"

	bioalphabet "github.com/biogo/biogo/alphabet"

	"github.com/kortschak/njtree/fastaio"
	"github.com/kortschak/njtree/fterr"
)

var n = flag.Int("n", 0, "number of sequences to sample (required, must be positive)")

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "invalid argument: must have an input fasta path and an output fasta path")
		flag.Usage()
		os.Exit(1)
	}
	in, out := flag.Arg(0), flag.Arg(1)

	if *n <= 0 {
		log.Fatalf("%v: -n must be positive, got %d", fterr.ErrInvalidArgument, *n)
	}

	f, err := os.Open(in)
	if err != nil {
		log.Fatalf("failed to open %q: %v", in, err)
	}
	defer f.Close()

	// DNAgapped's recognised character set is a superset of ungapped
	// DNA and close enough to protein residues for a plain record scan
	// that never inspects column content; sampling doesn't care which
	// alphabet the sequences actually use.
	labels, seqs, err := fastaio.ReadAlignment(f, bioalphabet.DNAgapped)
	if err != nil {
		log.Fatalf("failed to read fasta file: %v", err)
	}

	if *n > len(labels) {
		log.Fatalf("%v: cannot sample %d sequences from a file with %d sequences", fterr.ErrInvalidArgument, *n, len(labels))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	idx := rng.Perm(len(labels))[:*n]
	sort.Ints(idx)

	sampleLabels := make([]string, *n)
	for i, k := range idx {
		sampleLabels[i] = labels[k]
	}

	outF, err := os.Create(out)
	if err != nil {
		log.Fatalf("failed to create %q: %v", out, err)
	}
	defer outF.Close()
	if err := fastaio.WriteFasta(outF, sampleLabels, seqs, bioalphabet.DNAgapped); err != nil {
		log.Fatalf("failed to write sample: %v", err)
	}
}
