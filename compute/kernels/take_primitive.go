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

import (
	"github.com/colkit/columnio/arrow"
	"github.com/colkit/columnio/arrow/array"
	"github.com/colkit/columnio/arrow/bitutil"
)

// takePrimitive implements primitive gather: one output value
// buffer sized exactly indices.Len()*sizeof(T), with four specialised
// null-combination paths (values-has-nulls x indices-has-nulls) chosen
// once per call; only the paths where nulls are present test validity
// inside the loop.
func takePrimitive[T arrow.Numeric](values *array.Primitive[T], idx indices) (array.Interface, error) {
	n := idx.Len()
	out := make([]T, n)
	src := values.Values()

	valuesHasNulls := values.NullN() > 0
	indicesHasNulls := idx.HasNulls()

	switch {
	case !valuesHasNulls && !indicesHasNulls:
		for k := 0; k < n; k++ {
			ix, ok := idx.At(k)
			if !ok {
				return nil, ErrCastToUsize()
			}
			out[k] = src[ix]
		}
		return array.NewPrimitive(out, nil, 0), nil

	case valuesHasNulls && !indicesHasNulls:
		valid := bitutil.NewBitmap(n, true)
		nullCount := 0
		for k := 0; k < n; k++ {
			ix, ok := idx.At(k)
			if !ok {
				return nil, ErrCastToUsize()
			}
			if values.IsNull(int(ix)) {
				bitutil.ClearBit(valid, k)
				nullCount++
			}
			out[k] = src[ix]
		}
		if nullCount == 0 {
			return array.NewPrimitive(out, nil, 0), nil
		}
		return array.NewPrimitive(out, valid, nullCount), nil

	case !valuesHasNulls && indicesHasNulls:
		for k := 0; k < n; k++ {
			if !idx.IsValid(k) {
				continue // output slot k is null; payload left as T zero value
			}
			ix, ok := idx.At(k)
			if !ok {
				return nil, ErrCastToUsize()
			}
			out[k] = src[ix]
		}
		valid := indicesValidityBitmap(idx)
		return array.NewPrimitive(out, valid, idx.Len()-countValid(idx)), nil

	default:
		valid := bitutil.NewBitmap(n, true)
		nullCount := 0
		for k := 0; k < n; k++ {
			if !idx.IsValid(k) {
				bitutil.ClearBit(valid, k)
				nullCount++
				continue
			}
			ix, ok := idx.At(k)
			if !ok {
				return nil, ErrCastToUsize()
			}
			if values.IsNull(int(ix)) {
				bitutil.ClearBit(valid, k)
				nullCount++
			}
			out[k] = src[ix]
		}
		return array.NewPrimitive(out, valid, nullCount), nil
	}
}

// indicesValidityBitmap materialises idx's own validity as a packed
// bitmap, used when it is the sole source of result nullability.
func indicesValidityBitmap(idx indices) []byte {
	n := idx.Len()
	buf := bitutil.NewBitmap(n, true)
	for k := 0; k < n; k++ {
		if !idx.IsValid(k) {
			bitutil.ClearBit(buf, k)
		}
	}
	return buf
}

func countValid(idx indices) int {
	c := 0
	for k := 0; k < idx.Len(); k++ {
		if idx.IsValid(k) {
			c++
		}
	}
	return c
}
