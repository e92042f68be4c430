// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unionfind implements a path-compressed disjoint-set over
// integer node ids, used by the tree builder to redirect stale top-hits
// references to the node that currently encloses them after a join.
package unionfind

// UnionFind is a disjoint-set over the integers [0, n).
type UnionFind struct {
	parent []int
}

// New returns a UnionFind over n singleton sets {0}, {1}, ..., {n-1}.
func New(n int) *UnionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &UnionFind{parent: parent}
}

// Find returns the current representative of x's set, compressing the
// path from x to the root as it walks.
func (u *UnionFind) Find(x int) int {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		u.parent[x], x = root, u.parent[x]
	}
	return root
}

// Union merges y's set into x's set: after Union(x, y), Find(y) == Find(x).
// The first argument's root becomes the merged root, which is how the
// tree builder makes a newly allocated node id the canonical reference
// for both of its just-joined children.
func (u *UnionFind) Union(x, y int) {
	rx, ry := u.Find(x), u.Find(y)
	if rx == ry {
		return
	}
	u.parent[ry] = rx
}
