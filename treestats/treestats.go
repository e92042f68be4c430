// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treestats verifies the structural invariants spec'd for an
// exported tree: exactly one connected component and every internal
// node with exactly two children. Leaves and internal nodes are counted;
// leaf labels are not compared against any expected set. It
// builds a gonum weighted undirected graph over the exported tree the
// same way the teacher builds a similarity graph over candidate
// features, and reuses graph/topo's connected-components check as the
// single-component test.
package treestats

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/kortschak/njtree/tree"
)

// Report summarizes a structural verification pass over an exported
// tree.
type Report struct {
	Leaves              int
	Internal            int
	ConnectedComponents int
	Malformed           []string // human-readable description of each violation found
}

// OK reports whether the tree is a single connected component with no
// malformed internal nodes.
func (r Report) OK() bool {
	return r.ConnectedComponents == 1 && len(r.Malformed) == 0
}

// Verify walks root, builds its parent-child graph, and checks the
// "Tree shape" testable property: N leaves, N-1 internal nodes, every
// internal node with exactly two children, and a single connected
// component.
func Verify(root *tree.ExportedNode) (Report, error) {
	g := simple.NewWeightedUndirectedGraph(0, 0)

	type item struct {
		n  *tree.ExportedNode
		id int64
	}
	var report Report
	var next int64
	idOf := func() int64 {
		id := next
		next++
		return id
	}

	rootItem := item{n: root, id: idOf()}
	g.AddNode(simple.Node(rootItem.id))
	stack := []item{rootItem}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.n.IsLeaf() {
			report.Leaves++
			continue
		}
		report.Internal++

		children := []*tree.ExportedNode{cur.n.Left, cur.n.Right}
		nNonNil := 0
		for _, c := range children {
			if c != nil {
				nNonNil++
			}
		}
		if nNonNil != 2 {
			report.Malformed = append(report.Malformed, fmt.Sprintf("internal node has %d children, want 2", nNonNil))
		}

		for _, c := range children {
			if c == nil {
				continue
			}
			child := item{n: c, id: idOf()}
			g.AddNode(simple.Node(child.id))
			g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(cur.id), T: simple.Node(child.id), W: 1})
			stack = append(stack, child)
		}
	}

	report.ConnectedComponents = len(topo.ConnectedComponents(g))
	return report, nil
}
