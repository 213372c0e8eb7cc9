// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vkspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNames(t *testing.T) {
	sp, err := NewSpec(Uint32, Float32)
	assert.NoError(t, err)
	assert.NoError(t, sp.SetNames("WorkgroupSize", "Scale"))
	assert.ErrorContains(t, sp.SetName(2, "Extra"), "out of range")

	idx, ok := sp.IdxByName("Scale")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	_, ok = sp.IdxByName("Missing")
	assert.False(t, ok)

	assert.NoError(t, sp.SetAnyByName("WorkgroupSize", 64))
	assert.NoError(t, sp.SetAnyByName("Scale", 0.5))
	assert.ErrorContains(t, sp.SetAnyByName("Missing", 1), "not found")

	v, err := sp.GetAnyByName("WorkgroupSize")
	assert.NoError(t, err)
	assert.Equal(t, uint32(64), v)
	v, err = sp.GetAnyByName("Scale")
	assert.NoError(t, err)
	assert.Equal(t, float32(0.5), v)

	// names survive Clone, still referring to the clone's own data
	cp := sp.Clone()
	assert.NoError(t, cp.SetAnyByName("Scale", 2.0))
	ov, _ := sp.GetAnyByName("Scale")
	assert.Equal(t, float32(0.5), ov)
	cv, _ := cp.GetAnyByName("Scale")
	assert.Equal(t, float32(2.0), cv)
}
