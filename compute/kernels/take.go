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

// Package kernels implements the Take gather kernel, dispatching across
// every array.Interface variant defined in package array.
package kernels

import (
	"github.com/colkit/columnio/arrow/array"
)

// Take builds a new array of values gathered from values at the
// positions named by indices: `result[k] = values[indices[k]]`,
// with result null at k whenever indices is null at k or values is
// null at indices[k].
//
// indices must be one of the signed/unsigned integer
// array.Primitive[T] instantiations; any other indices type returns
// ErrNotImplemented. The returned array always has length
// indices.Len() and the same data type as values.
func Take(values array.Interface, indices array.Interface, opts ...Option) (array.Interface, error) {
	cfg := newConfig(opts)

	idx, err := wrapIndices(indices)
	if err != nil {
		return nil, err
	}

	if cfg.checkBounds {
		if err := checkBounds(idx, values.Len()); err != nil {
			return nil, err
		}
	}

	switch v := values.(type) {
	case *array.Null:
		return takeNull(v, idx), nil
	case *array.Boolean:
		return takeBoolean(v, idx)
	case *array.Decimal128:
		return takeDecimal128(v, idx)
	case *array.FixedSizeBinary:
		return takeFixedSizeBinary(v, idx)
	case *array.Binary:
		return takeBinary(v, idx)
	case *array.LargeBinary:
		return takeLargeBinary(v, idx)
	case *array.List:
		return takeList(v, idx, cfg, opts)
	case *array.FixedSizeList:
		return takeFixedSizeList(v, idx, cfg, opts)
	case *array.Struct:
		return takeStruct(v, idx, indices, opts)
	case *array.Dictionary:
		return takeDictionary(v, idx, cfg)
	case *array.Primitive[int8]:
		return takePrimitive[int8](v, idx)
	case *array.Primitive[uint8]:
		return takePrimitive[uint8](v, idx)
	case *array.Primitive[int16]:
		return takePrimitive[int16](v, idx)
	case *array.Primitive[uint16]:
		return takePrimitive[uint16](v, idx)
	case *array.Primitive[int32]:
		return takePrimitive[int32](v, idx)
	case *array.Primitive[uint32]:
		return takePrimitive[uint32](v, idx)
	case *array.Primitive[int64]:
		return takePrimitive[int64](v, idx)
	case *array.Primitive[uint64]:
		return takePrimitive[uint64](v, idx)
	case *array.Primitive[float32]:
		return takePrimitive[float32](v, idx)
	case *array.Primitive[float64]:
		return takePrimitive[float64](v, idx)
	default:
		return nil, ErrNotImplemented("value array type " + values.DataType().String())
	}
}

// checkBounds implements bounds-check policy: every non-null
// index is converted to a host unsigned integer and compared against
// length; the first failure aborts with a structured error naming the
// offending index.
func checkBounds(idx indices, length int) error {
	for k := 0; k < idx.Len(); k++ {
		if !idx.IsValid(k) {
			continue
		}
		ix, ok := idx.At(k)
		if !ok {
			return ErrCastToUsize()
		}
		if ix >= uint64(length) {
			return ErrIndexOutOfBounds(ix, length)
		}
	}
	return nil
}
