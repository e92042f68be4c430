// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fasttree builds an approximate phylogenetic tree from a pre-aligned
// FASTA file of DNA or protein sequences and writes it in Newick
// format.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/kortschak/njtree/align"
	"github.com/kortschak/njtree/alphabet"
	"github.com/kortschak/njtree/benchmark"
	"github.com/kortschak/njtree/fastaio"
	"github.com/kortschak/njtree/memstat"
	"github.com/kortschak/njtree/newick"
	"github.com/kortschak/njtree/tree"
	"github.com/kortschak/njtree/treestats"
)

var (
	algo            = flag.String("algo", "", "algorithm to build the tree with: nj, random, or slowtree (required)")
	alphaFlag       = flag.String("alphabet", "dna", "sequence alphabet: dna or protein")
	threshCP        = flag.Int("thresh-cp", 0, "top-hits list size multiplier (0 selects the default of 2)")
	refreshInterval = flag.Int("refresh-interval", 0, "steps between full top-hits refresh (0 selects the default of 2*N)")
	verify          = flag.Bool("verify", false, "run structural verification on the exported tree before writing it")
)

func main() {
	flag.Parse()
	if *algo != "nj" && *algo != "random" && *algo != "slowtree" {
		fmt.Fprintln(os.Stderr, "invalid argument: -algo must be one of nj, random, slowtree")
		flag.Usage()
		os.Exit(1)
	}
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "invalid argument: must have an input fasta path and an output newick path")
		flag.Usage()
		os.Exit(1)
	}
	in, out := flag.Arg(0), flag.Arg(1)

	var kind alphabet.Kind
	switch *alphaFlag {
	case "dna":
		kind = alphabet.DNA
	case "protein":
		kind = alphabet.Protein
	default:
		log.Fatalf("invalid argument: -alphabet must be dna or protein, got %q", *alphaFlag)
	}
	alpha := alphabet.New(kind)

	f, err := os.Open(in)
	if err != nil {
		log.Fatalf("failed to open %q: %v", in, err)
	}
	defer f.Close()

	log.Printf("loading fasta file: %s", in)
	labels, seqs, err := fastaio.ReadAlignment(f, fastaio.BiogoAlphabet(kind))
	if err != nil {
		log.Fatalf("failed to read alignment: %v", err)
	}

	al, err := align.New(labels, seqs, alpha)
	if err != nil {
		log.Fatalf("invalid alignment: %v", err)
	}
	log.Printf("profile matrices of %d sequences of length %d successfully constructed", len(al.Labels), al.Length)

	start := time.Now()
	var root *tree.ExportedNode
	switch *algo {
	case "nj":
		root, err = benchmark.NaiveNeighborJoining(al, alpha)
	case "random":
		root, err = benchmark.RandomJoining(al, alpha, rand.New(rand.NewSource(time.Now().UnixNano())))
	default:
		var b *tree.Builder
		b, err = tree.New(al, alpha, tree.Options{ThreshCP: *threshCP, RefreshInterval: *refreshInterval})
		if err == nil {
			var rootID int
			rootID, err = b.Build()
			if err == nil {
				root = b.Export(rootID)
			}
		}
	}
	if err != nil {
		log.Fatalf("failed to build tree: %v", err)
	}
	elapsed := time.Since(start)

	if *verify {
		report, err := treestats.Verify(root)
		if err != nil {
			log.Fatalf("failed to verify tree: %v", err)
		}
		if !report.OK() {
			log.Fatalf("tree failed structural verification: %+v", report)
		}
		log.Printf("verified: %d leaves, %d internal nodes, %d connected component(s)",
			report.Leaves, report.Internal, report.ConnectedComponents)
	}

	outF, err := os.Create(out)
	if err != nil {
		log.Fatalf("failed to create %q: %v", out, err)
	}
	defer outF.Close()
	if err := newick.Write(outF, root); err != nil {
		log.Fatalf("failed to write newick output: %v", err)
	}

	log.Printf("elapsed time: %.3f s", elapsed.Seconds())
	log.Printf("peak memory usage: %.2f MiB", memstat.PeakRSS())
}
