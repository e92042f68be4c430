// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unionfind

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSingletons(t *testing.T) {
	u := New(5)
	for i := 0; i < 5; i++ {
		require.Equal(t, i, u.Find(i))
	}
}

func TestUnionRedirectsChildToNewRoot(t *testing.T) {
	u := New(10)
	u.Union(5, 2)
	u.Union(5, 3)
	require.Equal(t, 5, u.Find(2))
	require.Equal(t, 5, u.Find(3))
	require.Equal(t, 5, u.Find(5))
}

func TestUnionChaining(t *testing.T) {
	u := New(10)
	u.Union(5, 2)
	u.Union(7, 5)
	require.Equal(t, 7, u.Find(2))
	require.Equal(t, 7, u.Find(5))
}

func TestUnionNoOpOnSameSet(t *testing.T) {
	u := New(4)
	u.Union(1, 2)
	u.Union(1, 2)
	require.Equal(t, 1, u.Find(2))
}
