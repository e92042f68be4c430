// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alphabet

// blosum45Letters is the canonical amino-acid order used to index
// blosum45, matching the order used throughout this package.
const blosum45Letters = "ARNDCQEGHILKMFPSTWYV"

// blosum45 is the BLOSUM45 substitution score matrix, indexed in
// blosum45Letters order. Values are the standard published BLOSUM45
// log-odds scores.
var blosum45 = [][]int{
	{5, -2, -1, -2, -1, -1, -1, 0, -2, -1, -1, -1, -1, -2, -1, 1, 0, -2, -2, 0},
	{-2, 7, 0, -1, -3, 1, 0, -2, 0, -3, -2, 3, -1, -2, -2, -1, -1, -2, -1, -2},
	{-1, 0, 6, 2, -2, 0, 0, 0, 1, -2, -3, 0, -2, -2, -2, 1, 0, -4, -2, -3},
	{-2, -1, 2, 7, -3, 0, 2, -1, 0, -4, -3, 0, -3, -4, -1, 0, -1, -4, -2, -3},
	{-1, -3, -2, -3, 12, -3, -3, -3, -3, -3, -2, -3, -2, -2, -4, -1, -1, -5, -3, -1},
	{-1, 1, 0, 0, -3, 6, 2, -2, 1, -2, -2, 1, 0, -4, -1, 0, -1, -2, -1, -3},
	{-1, 0, 0, 2, -3, 2, 6, -2, 0, -3, -2, 1, -2, -3, 0, 0, -1, -3, -2, -3},
	{0, -2, 0, -1, -3, -2, -2, 7, -2, -4, -3, -2, -2, -3, -2, 0, -2, -2, -3, -3},
	{-2, 0, 1, 0, -3, 1, 0, -2, 10, -3, -2, -1, 0, -2, -2, -1, -2, -3, 2, -3},
	{-1, -3, -2, -4, -3, -2, -3, -4, -3, 5, 2, -3, 2, 0, -2, -2, -1, -2, 0, 3},
	{-1, -2, -3, -3, -2, -2, -2, -3, -2, 2, 5, -3, 2, 1, -3, -3, -1, -2, 0, 1},
	{-1, 3, 0, 0, -3, 1, 1, -2, -1, -3, -3, 5, -1, -3, -1, -1, -1, -2, -1, -2},
	{-1, -1, -2, -3, -2, 0, -2, -2, 0, 2, 2, -1, 6, 0, -2, -2, -1, -2, 0, 1},
	{-2, -2, -2, -4, -2, -4, -3, -3, -2, 0, 1, -3, 0, 8, -3, -2, -1, 1, 3, 0},
	{-1, -2, -2, -1, -4, -1, 0, -2, -2, -2, -3, -1, -2, -3, 9, -1, -1, -3, -3, -3},
	{1, -1, 1, 0, -1, 0, 0, 0, -1, -2, -3, -1, -2, -2, -1, 4, 2, -4, -2, -1},
	{0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, -1, -1, 2, 5, -3, -1, 0},
	{-2, -2, -4, -4, -5, -2, -3, -2, -3, -2, -2, -2, -2, 1, -3, -4, -3, 15, 3, -3},
	{-2, -1, -2, -2, -3, -1, -2, -3, 2, 0, 0, -1, 0, 3, -3, -2, -1, 3, 8, -1},
	{0, -2, -3, -3, -1, -3, -3, -3, -3, 3, 1, -2, 1, 0, -3, -1, 0, -3, -1, 5},
}

// blosum45Unsimilarity derives the protein unsimilarity matrix from
// blosum45: for each row i, min and max are taken over the whole row
// (diagonal included), and U[i][j] = (B[i][j] -
// max_i) / (min_i - max_i), with U[i][i] forced to 0.
func blosum45Unsimilarity() [][]float64 {
	k := len(blosum45)
	u := make([][]float64, k)
	for i := 0; i < k; i++ {
		min, max := blosum45[i][0], blosum45[i][0]
		for j := 0; j < k; j++ {
			v := blosum45[i][j]
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		u[i] = make([]float64, k)
		for j := 0; j < k; j++ {
			if i == j {
				u[i][j] = 0
				continue
			}
			u[i][j] = float64(blosum45[i][j]-max) / float64(min-max)
		}
	}
	return u
}
