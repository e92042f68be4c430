// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package node wraps a profile with the up-distance and variance state
// used by the tree-building heuristic, and implements the weighted join
// of two nodes into their parent.
package node

import (
	"math"

	"github.com/kortschak/njtree/alphabet"
	"github.com/kortschak/njtree/distance"
	"github.com/kortschak/njtree/profile"
)

// Info wraps a Profile with the propagated up-distance and variance
// used when selecting and weighting joins. For a leaf, UpDistance and
// Variance are both zero. Once constructed, an Info is never mutated.
type Info struct {
	Profile    *profile.Profile
	UpDistance float64
	Variance   float64
}

// Leaf builds the Info for a single aligned sequence.
func Leaf(p *profile.Profile) *Info {
	return &Info{Profile: p}
}

// Distance returns the out-distance-adjusted measure the engine
// minimises when selecting joins: the raw profile distance less both
// nodes' accumulated up-distance offsets.
func Distance(n1, n2 *Info, a *alphabet.Alphabet) float64 {
	return distance.Uncorrected(n1.Profile, n2.Profile, a) - n1.UpDistance - n2.UpDistance
}

// Join merges n1 and n2 into their parent's Info, given the
// out-distance-adjusted distance d between them (computed by the
// caller, typically via a cache rather than a fresh call to Distance).
// It returns the parent Info along with the branch lengths to n1 and
// n2 respectively.
func Join(n1, n2 *Info, d float64, a *alphabet.Alphabet) (parent *Info, leftBranch, rightBranch float64, err error) {
	v1, v2 := n1.Variance, n2.Variance

	var alpha float64
	if v1+v2 == 0 {
		alpha = 0.5
	} else {
		alpha = clamp(0.5+(v2-v1)/(2*(v1+v2)), 0, 1)
	}

	leftBranch = alpha * d
	rightBranch = (1 - alpha) * d

	var up float64
	if d != 0 {
		up = d/2 + math.Abs(v1-v2)/(2*d)
	}

	variance := alpha*alpha*v1 + (1-alpha)*(1-alpha)*v2

	joined, err := profile.WeightedJoin(n1.Profile, n2.Profile, alpha, 1-alpha)
	if err != nil {
		return nil, 0, 0, err
	}

	return &Info{
		Profile:    joined,
		UpDistance: up,
		Variance:   variance,
	}, leftBranch, rightBranch, nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
