// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmark provides two reference tree-building algorithms
// the main top-hits engine is measured against: classical O(N³)
// neighbour-joining and uniformly random joining. Neither is meant for
// production use; both exist so a caller can compare the heuristic
// engine's output against ground truth and against a lower bound.
package benchmark

import (
	"math"
	"math/rand"

	"github.com/kortschak/njtree/align"
	"github.com/kortschak/njtree/alphabet"
	"github.com/kortschak/njtree/distance"
	"github.com/kortschak/njtree/profile"
	"github.com/kortschak/njtree/tree"
)

// NaiveNeighborJoining builds a tree from al using the classical
// neighbour-joining algorithm: the full uncorrected pairwise distance
// matrix is computed up front, then N-2 Q-matrix joins are performed,
// each in O(N^2) time, for a total cost of O(N^3). It returns the same
// *tree.ExportedNode shape the top-hits engine exports, so all engines
// share one Newick writer.
func NaiveNeighborJoining(al *align.Alignment, alpha *alphabet.Alphabet) (*tree.ExportedNode, error) {
	n := len(al.Labels)
	if n == 1 {
		return &tree.ExportedNode{Label: al.Labels[0]}, nil
	}

	profiles := make([]*profile.Profile, n)
	for i, label := range al.Labels {
		p, err := profile.FromAlignedString(al.Sequences[label], alpha)
		if err != nil {
			return nil, err
		}
		profiles[i] = p
	}

	nodes := make([]*tree.ExportedNode, 2*n-1)
	for i, label := range al.Labels {
		nodes[i] = &tree.ExportedNode{Label: label}
	}

	active := make([]int, n)
	for i := range active {
		active[i] = i
	}
	// d holds the uncorrected pairwise distance between every pair of
	// ids that were active at the same time; active ids index into it
	// directly, matching the source's plain dict-of-dicts.
	d := make(map[[2]int]float64)
	key := func(i, j int) [2]int {
		if i > j {
			i, j = j, i
		}
		return [2]int{i, j}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d[key(i, j)] = distance.Uncorrected(profiles[i], profiles[j], alpha)
		}
	}
	dist := func(i, j int) float64 {
		if i == j {
			return 0
		}
		return d[key(i, j)]
	}

	nextID := n
	for len(active) > 2 {
		m := len(active)
		total := make(map[int]float64, m)
		for _, i := range active {
			var s float64
			for _, j := range active {
				s += dist(i, j)
			}
			total[i] = s
		}

		bestI, bestJ, bestQ := -1, -1, math.Inf(1)
		for _, i := range active {
			for _, j := range active {
				if i == j {
					continue
				}
				q := float64(m-2)*dist(i, j) - total[i] - total[j]
				if q < bestQ {
					bestI, bestJ, bestQ = i, j, q
				}
			}
		}

		dij := dist(bestI, bestJ)
		delta := (total[bestI] - total[bestJ]) / float64(m-2)
		limbI := (dij + delta) / 2
		limbJ := (dij - delta) / 2

		newID := nextID
		nextID++
		for _, k := range active {
			if k == bestI || k == bestJ {
				continue
			}
			d[key(newID, k)] = (dist(k, bestI) + dist(k, bestJ) - dij) / 2
		}

		nodes[newID] = &tree.ExportedNode{
			Left: nodes[bestI], Right: nodes[bestJ],
			LeftLength:  alpha.Correction(limbI),
			RightLength: alpha.Correction(limbJ),
		}

		next := active[:0:0]
		for _, id := range active {
			if id != bestI && id != bestJ {
				next = append(next, id)
			}
		}
		active = append(next, newID)
	}

	i, j := active[0], active[1]
	root := &tree.ExportedNode{
		Left: nodes[i], Right: nodes[j],
		LeftLength:  alpha.Correction(dist(i, j)),
		RightLength: 0,
	}
	return root, nil
}

// RandomJoining builds a tree from al by repeatedly joining two
// uniformly-random active nodes until one remains. It carries no
// limb-length model: branch lengths are the raw, uncorrected profile
// distance between the two nodes at the moment they are joined, with
// no up-distance or correction applied, matching the source's
// random_joining benchmark.
func RandomJoining(al *align.Alignment, alpha *alphabet.Alphabet, rng *rand.Rand) (*tree.ExportedNode, error) {
	n := len(al.Labels)
	if n == 1 {
		return &tree.ExportedNode{Label: al.Labels[0]}, nil
	}

	profiles := make([]*profile.Profile, n)
	nodes := make([]*tree.ExportedNode, n)
	for i, label := range al.Labels {
		p, err := profile.FromAlignedString(al.Sequences[label], alpha)
		if err != nil {
			return nil, err
		}
		profiles[i] = p
		nodes[i] = &tree.ExportedNode{Label: label}
	}

	active := make([]int, n)
	for i := range active {
		active[i] = i
	}

	for len(active) > 1 {
		a := rng.Intn(len(active))
		b := rng.Intn(len(active) - 1)
		if b >= a {
			b++
		}
		i, j := active[a], active[b]

		d := distance.Uncorrected(profiles[i], profiles[j], alpha)
		merged, err := profile.WeightedJoin(profiles[i], profiles[j], 1, 1)
		if err != nil {
			return nil, err
		}
		newNode := &tree.ExportedNode{
			Left: nodes[i], Right: nodes[j],
			LeftLength: d, RightLength: d,
		}

		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		next := make([]int, 0, len(active)-1)
		for k, id := range active {
			if k != lo && k != hi {
				next = append(next, id)
			}
		}
		newID := len(nodes)
		profiles = append(profiles, merged)
		nodes = append(nodes, newNode)
		active = append(next, newID)
	}

	return nodes[active[0]], nil
}
