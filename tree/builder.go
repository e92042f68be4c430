// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree implements the heuristic join engine: a top-hits cache
// that avoids the O(N²) per-step candidate search of classical
// neighbour-joining, a lazy triangular distance cache, union-find
// bookkeeping that keeps top-hits lists valid across joins, and tree
// export.
package tree

import (
	"fmt"
	"math"

	"github.com/kortschak/njtree/align"
	"github.com/kortschak/njtree/alphabet"
	"github.com/kortschak/njtree/fterr"
	"github.com/kortschak/njtree/node"
	"github.com/kortschak/njtree/profile"
	"github.com/kortschak/njtree/unionfind"
)

// treeNode is one entry in the builder's append-only node vector. Ids
// in [0, n) are leaves; ids in [n, 2n-1) are internal.
type treeNode struct {
	ID          int
	Info        *node.Info
	Left, Right int // -1 for leaves
	Label       string
}

func (t *treeNode) isLeaf() bool { return t.Left < 0 }

// Options configures a Builder beyond its required alignment and
// alphabet.
type Options struct {
	// ThreshCP scales the top-hits list size: tophits_threshold =
	// ThreshCP * floor(sqrt(N)). Zero selects the default of 2.
	ThreshCP int
	// RefreshInterval is the number of steps between full top-hits
	// recomputation. Zero selects the default of 2*N.
	RefreshInterval int
}

// Builder holds all mutable state for one tree build: the node vector,
// active-id set, distance cache, union-find table, and per-node
// top-hits lists.
type Builder struct {
	alpha *alphabet.Alphabet
	nodes []*treeNode
	active map[int]struct{}
	cache  *cache
	uf     *unionfind.UnionFind
	tophits map[int][]int

	n               int
	threshold       int
	refreshInterval int
	steps           int
}

// New constructs a Builder from a validated alignment, seeding one leaf
// NodeInfo per sequence and computing initial top-hits lists.
func New(al *align.Alignment, alpha *alphabet.Alphabet, opts Options) (*Builder, error) {
	n := len(al.Labels)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty alignment", fterr.ErrInvalidAlignment)
	}

	threshCP := opts.ThreshCP
	if threshCP == 0 {
		threshCP = 2
	}
	refreshInterval := opts.RefreshInterval
	if refreshInterval == 0 {
		refreshInterval = 2 * n
	}

	b := &Builder{
		alpha:           alpha,
		nodes:           make([]*treeNode, 0, maxNodes(n)),
		active:          make(map[int]struct{}, n),
		cache:           newCache(n),
		uf:              unionfind.New(maxNodes(n)),
		tophits:         make(map[int][]int, maxNodes(n)),
		n:               n,
		threshold:       threshCP * isqrt(n),
		refreshInterval: refreshInterval,
	}
	if b.threshold < 1 {
		b.threshold = 1
	}

	for i, label := range al.Labels {
		p, err := profile.FromAlignedString(al.Sequences[label], alpha)
		if err != nil {
			return nil, err
		}
		b.nodes = append(b.nodes, &treeNode{ID: i, Info: node.Leaf(p), Left: -1, Right: -1, Label: label})
		b.active[i] = struct{}{}
	}

	for i := 0; i < n; i++ {
		b.tophits[i] = b.computeTopHits(i, b.otherActive(i))
	}

	return b, nil
}

func maxNodes(n int) int {
	if n == 1 {
		return 1
	}
	return 2*n - 1
}

func isqrt(n int) int {
	return int(math.Sqrt(float64(n)))
}

// otherActive returns the active ids other than i.
func (b *Builder) otherActive(i int) []int {
	out := make([]int, 0, len(b.active))
	for id := range b.active {
		if id != i {
			out = append(out, id)
		}
	}
	return out
}

// dist returns the out-distance-adjusted distance between i and j,
// computing and caching it on first request.
func (b *Builder) dist(i, j int) float64 {
	if d, ok := b.cache.get(i, j); ok {
		return d
	}
	d := node.Distance(b.nodes[i].Info, b.nodes[j].Info, b.alpha)
	b.cache.set(i, j, d)
	return d
}

// NumActive reports how many node ids remain eligible for joining.
func (b *Builder) NumActive() int { return len(b.active) }

// Steps reports how many joins have been executed so far.
func (b *Builder) Steps() int { return b.steps }

// Step executes one join: it scans every active node's top-hits list
// (redirected through union-find), picks the globally best candidate
// pair, and merges them into a new node. It returns the merged node's
// id. Step must not be called once NumActive() has reached 1.
func (b *Builder) Step() (int, error) {
	if len(b.active) < 2 {
		return 0, fmt.Errorf("njtree: tree: Step called with fewer than two active nodes")
	}

	bestI, bestJ, bestD := -1, -1, math.Inf(1)
	for i := range b.active {
		if len(b.tophits[i]) == 0 {
			b.tophits[i] = b.computeTopHits(i, b.otherActive(i))
		}
		ci, cd := scanTopHits(b, i, b.tophits[i])
		if ci < 0 {
			// Every stored candidate redirected to something no
			// longer active; fall back to a fresh list before
			// giving up on this node for the round.
			b.tophits[i] = b.computeTopHits(i, b.otherActive(i))
			ci, cd = scanTopHits(b, i, b.tophits[i])
		}
		if ci < 0 {
			continue
		}
		if cd < bestD {
			bestI, bestJ, bestD = i, ci, cd
		}
	}
	if bestI < 0 {
		return 0, fmt.Errorf("njtree: tree: no candidate pair found among %d active nodes", len(b.active))
	}

	id, err := b.join(bestI, bestJ, bestD)
	if err != nil {
		return 0, err
	}

	b.steps++
	if b.refreshInterval > 0 && b.steps%b.refreshInterval == 0 {
		b.refreshAllTopHits()
	}
	return id, nil
}

// scanTopHits finds the nearest active candidate for i among ids,
// redirecting each through union-find, and returns (-1, +Inf) if none
// resolve to a currently active, distinct node.
func scanTopHits(b *Builder, i int, ids []int) (int, float64) {
	best, bestD := -1, math.Inf(1)
	for _, raw := range ids {
		j := b.uf.Find(raw)
		if j == i {
			continue
		}
		if _, ok := b.active[j]; !ok {
			continue
		}
		d := b.dist(i, j)
		if d < bestD {
			best, bestD = j, d
		}
	}
	return best, bestD
}

// join merges i and j, with out-distance-adjusted distance d between
// them, into a new node.
func (b *Builder) join(i, j int, d float64) (int, error) {
	m := len(b.nodes)
	b.cache.appendRow()

	parent, _, _, err := node.Join(b.nodes[i].Info, b.nodes[j].Info, d, b.alpha)
	if err != nil {
		return 0, err
	}
	// Record the un-split join distance for both children so export
	// recovers the same raw, saturating value the join itself used,
	// rather than an alpha-weighted half of it: correction is only
	// guaranteed to saturate to +Inf when applied to the full distance
	// (see benchmark.NaiveNeighborJoining's final join, which corrects
	// the full pairwise distance rather than a split limb).
	b.cache.set(m, i, d)
	b.cache.set(m, j, d)

	b.uf.Union(m, i)
	b.uf.Union(m, j)

	b.nodes = append(b.nodes, &treeNode{ID: m, Info: parent, Left: i, Right: j})
	b.tophits[m] = b.mergeTopHits(i, j, m)

	delete(b.active, i)
	delete(b.active, j)
	b.active[m] = struct{}{}

	return m, nil
}

// refreshAllTopHits recomputes every active node's top-hits list
// against the current active set, discarding redirection drift that
// accumulates between refreshes.
func (b *Builder) refreshAllTopHits() {
	others := b.activeIDs()
	for i := range b.active {
		b.tophits[i] = b.computeTopHits(i, others)
	}
}

// Build runs Step until a single root node remains (or, for a
// single-sequence alignment, returns the lone leaf immediately) and
// returns the root's id.
func (b *Builder) Build() (int, error) {
	if b.n == 1 {
		return b.nodes[0].ID, nil
	}
	var root int
	for len(b.active) > 1 {
		id, err := b.Step()
		if err != nil {
			return 0, err
		}
		root = id
	}
	return root, nil
}
