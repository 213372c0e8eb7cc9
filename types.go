// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vkspec

import "reflect"

// See: https://registry.khronos.org/vulkan/specs/1.3-extensions/html/chap10.html#pipelines-specialization-constants

// Types is the list of GPU data types that can be named in a Spec
// type list.  Only the scalar types are valid for specialization
// constants -- the composite types are included so that Config can
// reject them with a diagnostic naming the offending type.
type Types int32 //enums:enum

const (
	UndefType Types = iota

	// Bool32 is a 4 byte boolean as used by shaders (VkBool32):
	// Go bool values are packed as 0 or 1 in 4 bytes.
	Bool32

	Int8
	Uint8

	Int16
	Uint16

	Int32
	Uint32

	Int64
	Uint64

	Float32
	Float64

	// composite types: not usable as specialization constants
	Float32Vec2
	Float32Vec3
	Float32Vec4
	Float32Mat4

	Struct
)

// TypeSizes gives the number of bytes for each type.
// Struct is 0 because its size depends on its members.
var TypeSizes = map[Types]int{
	UndefType:   0,
	Bool32:      4,
	Int8:        1,
	Uint8:       1,
	Int16:       2,
	Uint16:      2,
	Int32:       4,
	Uint32:      4,
	Int64:       8,
	Uint64:      8,
	Float32:     4,
	Float64:     8,
	Float32Vec2: 8,
	Float32Vec3: 12,
	Float32Vec4: 16,
	Float32Mat4: 64,
	Struct:      0,
}

// Bytes returns the number of bytes for this type.
func (tp Types) Bytes() int {
	return TypeSizes[tp]
}

// IsScalar returns true if this is a scalar type that can be used
// as a specialization constant value.
func (tp Types) IsScalar() bool {
	return tp >= Bool32 && tp <= Float64
}

// Scalar is the set of Go types that can be packed as specialization
// constant values -- Vulkan only supports scalars, and the type system
// excludes everything else here at compile time.
// Plain int and uint are deliberately not included: specialization
// constant sizes must be explicit, so use a sized type.
type Scalar interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~float32 | ~float64
}

// TypeFor returns the Types tag for the type of the given Go scalar
// value, or UndefType if it is not a supported scalar.
// Go bool maps to Bool32.
func TypeFor(val any) Types {
	if val == nil {
		return UndefType
	}
	switch reflect.ValueOf(val).Kind() {
	case reflect.Bool:
		return Bool32
	case reflect.Int8:
		return Int8
	case reflect.Uint8:
		return Uint8
	case reflect.Int16:
		return Int16
	case reflect.Uint16:
		return Uint16
	case reflect.Int32:
		return Int32
	case reflect.Uint32:
		return Uint32
	case reflect.Int64:
		return Int64
	case reflect.Uint64:
		return Uint64
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	}
	return UndefType
}
