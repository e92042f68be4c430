// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "github.com/kortschak/njtree/node"

// ExportedNode is the abstract tree handed to the Newick serializer and
// other collaborators: a binary tree with labelled leaves and branch
// lengths recovered from the builder's distance cache via the alphabet's
// correction function. Leaves carry their original label; internal nodes
// are unlabelled.
type ExportedNode struct {
	Label       string // empty for internal nodes
	Left, Right *ExportedNode

	LeftLength, RightLength float64
}

// IsLeaf reports whether n has no children.
func (n *ExportedNode) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Export walks the builder's node vector from root, attaching each
// child under its parent with a branch length equal to the alphabet's
// correction applied to the cached raw distance between them. It uses
// an explicit stack rather than recursion so it tolerates deep trees
// built from large alignments.
func (b *Builder) Export(root int) *ExportedNode {
	type frame struct {
		id  int
		out **ExportedNode
	}
	var out *ExportedNode
	stack := []frame{{id: root, out: &out}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tn := b.nodes[f.id]
		n := &ExportedNode{Label: tn.Label}
		*f.out = n

		if tn.isLeaf() {
			continue
		}

		raw, ok := b.cache.get(f.id, tn.Left)
		if !ok {
			raw = node.Distance(b.nodes[f.id].Info, b.nodes[tn.Left].Info, b.alpha)
		}
		n.LeftLength = b.alpha.Correction(raw)

		raw, ok = b.cache.get(f.id, tn.Right)
		if !ok {
			raw = node.Distance(b.nodes[f.id].Info, b.nodes[tn.Right].Info, b.alpha)
		}
		n.RightLength = b.alpha.Correction(raw)

		stack = append(stack, frame{id: tn.Left, out: &n.Left}, frame{id: tn.Right, out: &n.Right})
	}
	return out
}
