// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vkspec

import (
	"fmt"
	"unsafe"

	"goki.dev/laser"
)

// typeAt returns the configured type for constant index idx, checking
// that it matches the accessor's value type.
func (sp *Spec) typeAt(op string, idx int, valType Types) (Types, error) {
	if idx < 0 || idx >= len(sp.Types) {
		return UndefType, fmt.Errorf("%s: constant index %d out of range: %d constants configured", op, idx, len(sp.Types))
	}
	tp := sp.Types[idx]
	if valType != tp {
		return UndefType, fmt.Errorf("%s: value type %s does not match configured type %s for constant %d", op, valType, tp, idx)
	}
	return tp, nil
}

// Set writes the raw bytes of the given scalar value into the region
// of the packed buffer for constant index idx, which must have been
// configured with the matching type.  Exactly that region is written:
// no other constant's bytes are disturbed.
func Set[T Scalar](sp *Spec, idx int, val T) error {
	tp, err := sp.typeAt("vkspec.Set", idx, TypeFor(val))
	if err != nil {
		return err
	}
	off := sp.Entries[idx].Offset
	if tp == Bool32 {
		// Go bools are 1 byte: zero the full 4 byte VkBool32 region
		// first, so the value byte leaves a valid 0 or 1 uint32
		*(*uint32)(unsafe.Pointer(&sp.Data[off])) = 0
	}
	*(*T)(unsafe.Pointer(&sp.Data[off])) = val
	return nil
}

// Get reads the bytes of the region for constant index idx, which
// must have been configured with a type matching T, and returns them
// reinterpreted as a T value.
func Get[T Scalar](sp *Spec, idx int) (T, error) {
	var zero T
	_, err := sp.typeAt("vkspec.Get", idx, TypeFor(zero))
	if err != nil {
		return zero, err
	}
	off := sp.Entries[idx].Offset
	return *(*T)(unsafe.Pointer(&sp.Data[off])), nil
}

// SetAny sets the constant at index idx from a value of any type,
// converting it to the configured scalar type.  Use this for values
// coming from config files or other loosely-typed sources; use Set
// when the value type is known.
func (sp *Spec) SetAny(idx int, val any) error {
	if idx < 0 || idx >= len(sp.Types) {
		return fmt.Errorf("vkspec.Spec.SetAny: constant index %d out of range: %d constants configured", idx, len(sp.Types))
	}
	switch sp.Types[idx] {
	case Bool32:
		b, err := laser.ToBool(val)
		if err != nil {
			return err
		}
		return Set(sp, idx, b)
	case Int8:
		i, err := laser.ToInt(val)
		if err != nil {
			return err
		}
		return Set(sp, idx, int8(i))
	case Uint8:
		i, err := laser.ToInt(val)
		if err != nil {
			return err
		}
		return Set(sp, idx, uint8(i))
	case Int16:
		i, err := laser.ToInt(val)
		if err != nil {
			return err
		}
		return Set(sp, idx, int16(i))
	case Uint16:
		i, err := laser.ToInt(val)
		if err != nil {
			return err
		}
		return Set(sp, idx, uint16(i))
	case Int32:
		i, err := laser.ToInt(val)
		if err != nil {
			return err
		}
		return Set(sp, idx, int32(i))
	case Uint32:
		i, err := laser.ToInt(val)
		if err != nil {
			return err
		}
		return Set(sp, idx, uint32(i))
	case Int64:
		i, err := laser.ToInt(val)
		if err != nil {
			return err
		}
		return Set(sp, idx, i)
	case Uint64:
		i, err := laser.ToInt(val)
		if err != nil {
			return err
		}
		return Set(sp, idx, uint64(i))
	case Float32:
		f, err := laser.ToFloat(val)
		if err != nil {
			return err
		}
		return Set(sp, idx, float32(f))
	case Float64:
		f, err := laser.ToFloat(val)
		if err != nil {
			return err
		}
		return Set(sp, idx, f)
	}
	return fmt.Errorf("vkspec.Spec.SetAny: constant %d has invalid type %s", idx, sp.Types[idx])
}

// GetAny returns the value of the constant at index idx as the
// corresponding Go scalar type (bool, int32, float32, etc).
func (sp *Spec) GetAny(idx int) (any, error) {
	if idx < 0 || idx >= len(sp.Types) {
		return nil, fmt.Errorf("vkspec.Spec.GetAny: constant index %d out of range: %d constants configured", idx, len(sp.Types))
	}
	switch sp.Types[idx] {
	case Bool32:
		return Get[bool](sp, idx)
	case Int8:
		return Get[int8](sp, idx)
	case Uint8:
		return Get[uint8](sp, idx)
	case Int16:
		return Get[int16](sp, idx)
	case Uint16:
		return Get[uint16](sp, idx)
	case Int32:
		return Get[int32](sp, idx)
	case Uint32:
		return Get[uint32](sp, idx)
	case Int64:
		return Get[int64](sp, idx)
	case Uint64:
		return Get[uint64](sp, idx)
	case Float32:
		return Get[float32](sp, idx)
	case Float64:
		return Get[float64](sp, idx)
	}
	return nil, fmt.Errorf("vkspec.Spec.GetAny: constant %d has invalid type %s", idx, sp.Types[idx])
}
