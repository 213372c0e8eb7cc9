// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vkspec

import (
	"unsafe"

	vk "github.com/goki/vulkan"
)

// VkInfo returns the vk.SpecializationInfo for the current values, to
// set as PSpecializationInfo on a vk.PipelineShaderStageCreateInfo at
// pipeline creation time (see SetShaderStage).  The info is rebuilt
// from the current entries and data on every call instead of being
// cached: a cached info would keep referencing a prior instance's
// storage across Clone.  The info references this Spec's own storage
// and is only valid while the Spec is alive: keep the Spec alive until
// the pipeline has been created.
func (sp *Spec) VkInfo() vk.SpecializationInfo {
	info := vk.SpecializationInfo{
		MapEntryCount: uint32(len(sp.Entries)),
		PMapEntries:   sp.Entries,
		DataSize:      uint64(len(sp.Data)),
	}
	if len(sp.Data) > 0 {
		info.PData = unsafe.Pointer(&sp.Data[0])
	}
	return info
}

// SetShaderStage sets this Spec's specialization info on the given
// shader stage config, for use in creating a graphics or compute
// pipeline.
func (sp *Spec) SetShaderStage(stg *vk.PipelineShaderStageCreateInfo) {
	stg.PSpecializationInfo = []vk.SpecializationInfo{sp.VkInfo()}
}
