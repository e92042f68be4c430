// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "math"

// cache is the lazy lower-triangular distance cache described in the
// data model: cache[i][j] for i>j holds a previously computed
// out-distance-adjusted distance, or NaN if it has not yet been
// computed. Row i has length i, holding columns 0..i-1; a new row is
// appended whenever a join allocates a new node id.
type cache struct {
	rows [][]float64
}

// newCache returns a cache pre-populated with n sentinel rows, one per
// initial leaf.
func newCache(n int) *cache {
	c := &cache{rows: make([][]float64, 0, 2*n-1)}
	for i := 0; i < n; i++ {
		c.appendRow()
	}
	return c
}

// appendRow grows the cache by one row of sentinels, sized for the
// current row count; this is the only growth operation, called once
// per join when the new node's id is allocated.
func (c *cache) appendRow() {
	row := make([]float64, len(c.rows))
	for i := range row {
		row[i] = math.NaN()
	}
	c.rows = append(c.rows, row)
}

// get returns the cached distance between i and j and whether it was
// present; i==j always returns (0, true) without touching storage.
func (c *cache) get(i, j int) (float64, bool) {
	if i == j {
		return 0, true
	}
	if i < j {
		i, j = j, i
	}
	v := c.rows[i][j]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// set stores the distance between i and j.
func (c *cache) set(i, j int, d float64) {
	if i == j {
		return
	}
	if i < j {
		i, j = j, i
	}
	c.rows[i][j] = d
}
