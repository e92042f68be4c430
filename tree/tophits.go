// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "sort"

// computeTopHits returns the tophits_threshold ids nearest to i among
// candidates, sorted ascending by dist. This is the exact O(N log N)
// seeding method; a FastTree-style approximate seeding from a nearby
// node's own list would also satisfy the invariants but is not used
// here, see the design notes for why the exact method was kept.
func (b *Builder) computeTopHits(i int, candidates []int) []int {
	type scored struct {
		id int
		d  float64
	}
	scores := make([]scored, 0, len(candidates))
	for _, j := range candidates {
		if j == i {
			continue
		}
		scores = append(scores, scored{id: j, d: b.dist(i, j)})
	}
	sort.Slice(scores, func(a, b int) bool { return scores[a].d < scores[b].d })
	if len(scores) > b.threshold {
		scores = scores[:b.threshold]
	}
	out := make([]int, len(scores))
	for k, s := range scores {
		out[k] = s.id
	}
	return out
}

// mergeTopHits builds the new node's top-hits list from the deduplicated
// union of its two children's lists, each redirected through find and
// with the new id excluded, truncated back to the threshold.
func (b *Builder) mergeTopHits(left, right, newID int) []int {
	seen := make(map[int]bool)
	merged := make([]int, 0, len(b.tophits[left])+len(b.tophits[right]))
	add := func(ids []int) {
		for _, raw := range ids {
			id := b.uf.Find(raw)
			if id == newID || seen[id] {
				continue
			}
			seen[id] = true
			merged = append(merged, id)
		}
	}
	add(b.tophits[left])
	add(b.tophits[right])

	sort.Slice(merged, func(a, c int) bool { return b.dist(newID, merged[a]) < b.dist(newID, merged[c]) })
	if len(merged) > b.threshold {
		merged = merged[:b.threshold]
	}
	return merged
}

// activeIDs returns a snapshot of the currently active node ids.
func (b *Builder) activeIDs() []int {
	out := make([]int, 0, len(b.active))
	for id := range b.active {
		out = append(out, id)
	}
	return out
}
