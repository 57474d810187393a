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

package arrow

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Numeric is the set of Go types array.Primitive[T] may be instantiated
// with: one type parameter plus this constraint stands in for a
// hand-written Traits struct per fixed-width variant.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// sizeOf reports sizeof(T) in bytes for T in Numeric, used to size dense
// value buffers.
func sizeOf[T Numeric]() int {
	var z T
	switch any(z).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	case int64, uint64, float64:
		return 8
	case int, uint:
		return 8
	default:
		panic("arrow: unsupported numeric type")
	}
}

// TypeOf returns the singleton NumericType describing T, the DataType
// array.Primitive[T] reports from DataType().
func TypeOf[T Numeric]() NumericType {
	var z T
	switch any(z).(type) {
	case int8:
		return Int8Type
	case uint8:
		return Uint8Type
	case int16:
		return Int16Type
	case uint16:
		return Uint16Type
	case int32:
		return Int32Type
	case uint32:
		return Uint32Type
	case int64:
		return Int64Type
	case uint64:
		return Uint64Type
	case float32:
		return Float32Type
	case float64:
		return Float64Type
	default:
		panic("arrow: unsupported numeric type")
	}
}

// CastFromBytes reinterprets a dense byte buffer as a []T slice without
// copying.
func CastFromBytes[T Numeric](b []byte) []T {
	if len(b) == 0 {
		return nil
	}
	width := sizeOf[T]()
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), len(b)/width)
}

// CastToBytes reinterprets a []T as a []byte without copying, the
// write-side counterpart of CastFromBytes.
func CastToBytes[T Numeric](values []T) []byte {
	if len(values) == 0 {
		return nil
	}
	width := sizeOf[T]()
	return unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), len(values)*width)
}
