// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vkspec

import (
	"fmt"
	"log"
)

// SetName sets a name for the constant at the given index, so values
// can be set and read by name instead of index.  Names must be
// unique.  Shaders only see constant ids, so names are purely a
// host-side convenience.
func (sp *Spec) SetName(idx int, name string) error {
	if idx < 0 || idx >= len(sp.Types) {
		err := fmt.Errorf("vkspec.Spec.SetName: constant index %d out of range: %d constants configured", idx, len(sp.Types))
		log.Println(err)
		return err
	}
	sp.Names.Add(name, idx)
	return nil
}

// SetNames sets names for the constants in order, starting at
// constant 0.
func (sp *Spec) SetNames(names ...string) error {
	for i, nm := range names {
		if err := sp.SetName(i, nm); err != nil {
			return err
		}
	}
	return nil
}

// IdxByName returns the constant index for the given name, and
// whether the name was found.
func (sp *Spec) IdxByName(name string) (int, bool) {
	oi, ok := sp.Names.IdxByKeyTry(name)
	if !ok {
		return -1, false
	}
	return sp.Names.ValByIdx(oi), true
}

// IdxByNameTry returns the constant index for the given name,
// with an error if the name was not found (error auto logged).
func (sp *Spec) IdxByNameTry(name string) (int, error) {
	idx, ok := sp.IdxByName(name)
	if !ok {
		err := fmt.Errorf("vkspec.Spec.IdxByNameTry: name %s not found", name)
		log.Println(err)
		return -1, err
	}
	return idx, nil
}

// SetAnyByName sets the named constant from a value of any type,
// converting it to the configured scalar type -- see SetAny.
func (sp *Spec) SetAnyByName(name string, val any) error {
	idx, err := sp.IdxByNameTry(name)
	if err != nil {
		return err
	}
	return sp.SetAny(idx, val)
}

// GetAnyByName returns the value of the named constant as the
// corresponding Go scalar type -- see GetAny.
func (sp *Spec) GetAnyByName(name string) (any, error) {
	idx, err := sp.IdxByNameTry(name)
	if err != nil {
		return nil, err
	}
	return sp.GetAny(idx)
}
