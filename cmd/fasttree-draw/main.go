// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fasttree-draw reads a Newick tree and renders a histogram of its
// finite branch lengths, as a quick visual sanity check on a build's
// output distribution.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/kortschak/njtree/newick"
)

var (
	in     = flag.String("in", "", "file name of a Newick tree to render (required)")
	format = flag.String("format", "svg", "output format: eps, jpg, jpeg, pdf, png, svg, or tiff")
	bins   = flag.Int("bins", 20, "number of histogram bins")
)

func main() {
	flag.Parse()
	if *in == "" {
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	root, err := newick.Parse(string(f))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lengths := finiteLengths(root, nil)
	if len(lengths) == 0 {
		fmt.Fprintln(os.Stderr, "no finite branch lengths found in tree")
		os.Exit(1)
	}

	p, err := plot.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	hist, err := plotter.NewHist(plotter.Values(lengths), *bins)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	p.Add(hist)

	font, err := vg.MakeFont("Helvetica", 14)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	p.Title.Text = filepath.Base(*in) + " branch lengths"
	p.Title.TextStyle = draw.TextStyle{Color: color.Gray{Y: 0}, Font: font}
	p.X.Label.Text = "branch length"
	p.Y.Label.Text = "count"

	out := filepath.Base(*in) + "." + *format
	if err := p.Save(15*vg.Centimeter, 10*vg.Centimeter, out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// finiteLengths collects every finite branch length under n,
// appending to dst.
func finiteLengths(n *newick.Node, dst []float64) []float64 {
	if n.HasLength && !math.IsInf(n.Length, 0) {
		dst = append(dst, n.Length)
	}
	for _, c := range n.Children {
		dst = finiteLengths(c, dst)
	}
	return dst
}
