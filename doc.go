// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vkspec provides typesafe specialization constants for Vulkan
// shaders, which are build-time constant values baked into a shader at
// pipeline creation time.
//
// A Spec packs an ordered, fixed list of scalar constant values into one
// contiguous byte buffer, with a parallel list of
// vk.SpecializationMapEntry records giving each value's constant id,
// offset, and size, so you never have to compute byte offsets by hand.
// Constant ids are assigned sequentially from 0 in the order the types
// are listed.
//
// Define a specialization over 2 ints and a float:
//
//	sp, err := vkspec.NewSpec(vkspec.Int32, vkspec.Int32, vkspec.Float32)
//
// Assign some values:
//
//	vkspec.Set(sp, 0, int32(4))
//	vkspec.Set(sp, 1, int32(1))
//	vkspec.Set(sp, 2, float32(93.2))
//
// Access them if you want:
//
//	v, _ := vkspec.Get[int32](sp, 0)
//
// Use this to create your graphics or compute pipeline -- the data is
// mapped to constant ids 0, 1, and 2 respectively:
//
//	sp.SetShaderStage(&stage) // stage is a vk.PipelineShaderStageCreateInfo
//
// The vk.SpecializationInfo returned by VkInfo is rebuilt on each call
// from the Spec's own entries and data, so it always references the
// storage of the instance you call it on, including across Clone and
// CopyFrom.
//
// Only scalar types can be used: this is enforced at compile time for
// the Get / Set accessors via the Scalar constraint, and at Config time
// for the type list, where any non-scalar type tag is diagnosed by name.
package vkspec
