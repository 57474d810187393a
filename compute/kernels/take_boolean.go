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
	"github.com/colkit/columnio/arrow/array"
	"github.com/colkit/columnio/arrow/bitutil"
)

// takeBoolean implements boolean gather: same null-composition
// policy as primitives, but the value payload is itself a packed
// bitmap addressed with bit-set primitives rather than a dense slice.
func takeBoolean(values *array.Boolean, idx indices) (array.Interface, error) {
	n := idx.Len()
	out := bitutil.NewBitmap(n, false)

	valuesHasNulls := values.NullN() > 0
	indicesHasNulls := idx.HasNulls()

	switch {
	case !indicesHasNulls && !valuesHasNulls:
		for k := 0; k < n; k++ {
			ix, ok := idx.At(k)
			if !ok {
				return nil, ErrCastToUsize()
			}
			bitutil.SetBitTo(out, k, values.Value(int(ix)))
		}
		return array.NewBoolean(n, out, nil, 0), nil

	case indicesHasNulls && !valuesHasNulls:
		// output validity is precisely the indices' validity slice
		for k := 0; k < n; k++ {
			if !idx.IsValid(k) {
				continue
			}
			ix, ok := idx.At(k)
			if !ok {
				return nil, ErrCastToUsize()
			}
			bitutil.SetBitTo(out, k, values.Value(int(ix)))
		}
		valid := indicesValidityBitmap(idx)
		return array.NewBoolean(n, out, valid, idx.Len()-countValid(idx)), nil

	case !indicesHasNulls && valuesHasNulls:
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
				continue
			}
			bitutil.SetBitTo(out, k, values.Value(int(ix)))
		}
		if nullCount == 0 {
			return array.NewBoolean(n, out, nil, 0), nil
		}
		return array.NewBoolean(n, out, valid, nullCount), nil

	default:
		// both carry validity: output is the bitwise AND of indices'
		// validity and "V is valid at ix", computed over a common range.
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
				continue
			}
			bitutil.SetBitTo(out, k, values.Value(int(ix)))
		}
		return array.NewBoolean(n, out, valid, nullCount), nil
	}
}
