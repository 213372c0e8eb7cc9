// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vkspec

import (
	"fmt"
	"log"
	"slices"

	vk "github.com/goki/vulkan"
	"goki.dev/ordmap"
)

// Spec packs an ordered, fixed list of scalar constant values into one
// contiguous byte buffer, with a parallel list of
// vk.SpecializationMapEntry records giving each value's constant id,
// offset, and size.  Constant ids are assigned sequentially from 0 in
// the order the types are given to Config.  Use VkInfo to get the
// vk.SpecializationInfo to set on a shader stage at pipeline creation
// time.  Use Clone to make an independent copy -- a plain struct copy
// would share the underlying storage.
type Spec struct {
	// ordered list of scalar value types -- fixed at Config
	// and never changed thereafter
	Types []Types

	// per-constant map entries, with constant id == index --
	// built once during Config, and determined entirely by the
	// type list, so Clone copies them by value
	Entries []vk.SpecializationMapEntry

	// packed constant values in Entries order -- zeroed to the
	// total size of the type list at Config, never resized
	Data []byte

	// optional names for constant indexes -- see SetName
	Names ordmap.Map[string, int]
}

// NewSpec returns a new Spec configured for the given ordered list of
// scalar types.  Returns nil and an error if any type is not a scalar.
func NewSpec(typs ...Types) (*Spec, error) {
	sp := &Spec{}
	if err := sp.Config(typs...); err != nil {
		return nil, err
	}
	return sp, nil
}

// Config configures the Spec for the given ordered list of scalar
// types, building the map entries and allocating the zeroed data
// buffer.  Each type must be a scalar per Types.IsScalar -- anything
// else is an error, as Vulkan specialization constants can only be
// scalars.  Any prior configuration and values are discarded.
func (sp *Spec) Config(typs ...Types) error {
	for _, tp := range typs {
		if !tp.IsScalar() {
			err := fmt.Errorf("vkspec.Spec.Config: type %s is not a scalar: specialization constants must be scalar values", tp)
			log.Println(err)
			return err
		}
	}
	n := len(typs)
	sp.Types = slices.Clone(typs)
	sp.Entries = make([]vk.SpecializationMapEntry, n)
	off := 0
	for i, tp := range typs {
		sz := tp.Bytes()
		sp.Entries[i] = vk.SpecializationMapEntry{
			ConstantID: uint32(i),
			Offset:     uint32(off),
			Size:       uint64(sz),
		}
		off += sz
	}
	sp.Data = make([]byte, off)
	sp.Names = ordmap.Map[string, int]{}
	return nil
}

// N returns the number of constants in the type list.
func (sp *Spec) N() int {
	return len(sp.Types)
}

// MemSize returns the total number of bytes of packed constant data.
func (sp *Spec) MemSize() int {
	return len(sp.Data)
}

// SameTypes returns true if the other Spec has an identical type list.
func (sp *Spec) SameTypes(oth *Spec) bool {
	return slices.Equal(sp.Types, oth.Types)
}

// Clone returns a new Spec with the same type list and a copy of the
// current values.  The entries depend only on the type list, not on
// the values, so they are copied directly without recomputation.
// The clone's VkInfo references only the clone's own storage.
func (sp *Spec) Clone() *Spec {
	cp := &Spec{}
	cp.Types = slices.Clone(sp.Types)
	cp.Entries = slices.Clone(sp.Entries)
	cp.Data = slices.Clone(sp.Data)
	for _, kv := range sp.Names.Order {
		cp.Names.Add(kv.Key, kv.Val)
	}
	return cp
}

// CopyFrom copies the constant values from the given source Spec,
// which must have an identical type list.  Only the data bytes are
// copied: the entries and names are invariant for a fixed type list
// and already reference this Spec's own storage, so nothing needs to
// be rebuilt.
func (sp *Spec) CopyFrom(src *Spec) error {
	if !sp.SameTypes(src) {
		err := fmt.Errorf("vkspec.Spec.CopyFrom: source type list %v does not match destination %v", src.Types, sp.Types)
		log.Println(err)
		return err
	}
	copy(sp.Data, src.Data)
	return nil
}

func (sp *Spec) String() string {
	s := ""
	for i, tp := range sp.Types {
		ent := sp.Entries[i]
		v, _ := sp.GetAny(i)
		s += fmt.Sprintf("%d:\t%s\toffset: %d\tsize: %d\tvalue: %v\n", i, tp.String(), ent.Offset, ent.Size, v)
	}
	return s
}
