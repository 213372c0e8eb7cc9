// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is initially adapted from https://github.com/vulkan-go/asche
// Copyright © 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package vkspec

import (
	"fmt"

	vk "github.com/goki/vulkan"
)

// IsError returns true if the given Vulkan result is an error code.
func IsError(ret vk.Result) bool {
	return ret != vk.Success
}

// NewError returns an error wrapping the given Vulkan result code,
// or nil if it is vk.Success.
func NewError(ret vk.Result) error {
	if ret != vk.Success {
		return fmt.Errorf("vulkan error: %s (%d)", vk.Error(ret).Error(), ret)
	}
	return nil
}

// IfPanic panics on the given error, if non-nil, running any given
// finalizers first.
func IfPanic(err error, finalizers ...func()) {
	if err != nil {
		for _, fn := range finalizers {
			fn()
		}
		panic(err)
	}
}
