// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kernels

import "github.com/colkit/columnio/arrow/array"

// indices normalizes any integral array.Primitive[T] into a uniform
// gather source, so every take_*.go gather routine dispatches once on
// indices' concrete Go type instead of repeating the switch itself.
// This plays the role runtime type assertions would play scattered
// across every gather routine; here it is a one-time type switch
// behind a narrow interface instead.
type indices interface {
	Len() int
	HasNulls() bool
	IsValid(i int) bool
	// At returns the index at logical slot i converted to a host
	// unsigned integer, and whether the conversion succeeded (false
	// for negative values and for values wider than the host word,
	// "Cast to usize failed").
	// At must not be called when IsValid(i) is false.
	At(i int) (uint64, bool)
}

type primitiveIndices[T indexNative] struct{ p *array.Primitive[T] }

type indexNative interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func (s primitiveIndices[T]) Len() int             { return s.p.Len() }
func (s primitiveIndices[T]) HasNulls() bool       { return s.p.NullN() > 0 }
func (s primitiveIndices[T]) IsValid(i int) bool   { return s.p.IsValid(i) }

func (s primitiveIndices[T]) At(i int) (uint64, bool) {
	v := s.p.Value(i)
	if v < 0 {
		return 0, false
	}
	if uint64(v) > uint64(^uint(0)) {
		return 0, false
	}
	return uint64(v), true
}

// wrapIndices dispatches on indices' concrete array type. Returns
// ErrNotImplemented for any non-integral variant
func wrapIndices(in array.Interface) (indices, error) {
	switch p := in.(type) {
	case *array.Primitive[int8]:
		return primitiveIndices[int8]{p}, nil
	case *array.Primitive[int16]:
		return primitiveIndices[int16]{p}, nil
	case *array.Primitive[int32]:
		return primitiveIndices[int32]{p}, nil
	case *array.Primitive[int64]:
		return primitiveIndices[int64]{p}, nil
	case *array.Primitive[uint8]:
		return primitiveIndices[uint8]{p}, nil
	case *array.Primitive[uint16]:
		return primitiveIndices[uint16]{p}, nil
	case *array.Primitive[uint32]:
		return primitiveIndices[uint32]{p}, nil
	case *array.Primitive[uint64]:
		return primitiveIndices[uint64]{p}, nil
	default:
		return nil, ErrNotImplemented("indices array type " + in.DataType().String())
	}
}
