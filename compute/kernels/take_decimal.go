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
	"github.com/colkit/columnio/arrow/decimal128"
)

// takeDecimal128 gathers a 16-byte payload per output slot, preserving
// (precision, scale); invalid inner values propagate null.
func takeDecimal128(values *array.Decimal128, idx indices) (array.Interface, error) {
	n := idx.Len()
	raw := make([]byte, n*decimal128.ByteWidth)
	dt := values.DataType().(arrow.Decimal128Type)

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
		copy(raw[k*decimal128.ByteWidth:], values.ValueBytes(int(ix)))
	}
	if nullCount == 0 {
		return array.NewDecimal128(dt, n, raw, nil, 0), nil
	}
	return array.NewDecimal128(dt, n, raw, valid, nullCount), nil
}

// takeFixedSizeBinary is the same policy with byte width k taken from
// the type.
func takeFixedSizeBinary(values *array.FixedSizeBinary, idx indices) (array.Interface, error) {
	n := idx.Len()
	dt := values.DataType().(arrow.FixedSizeBinaryType)
	raw := make([]byte, n*dt.ByteWidth)

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
		copy(raw[k*dt.ByteWidth:], values.Value(int(ix)))
	}
	if nullCount == 0 {
		return array.NewFixedSizeBinary(dt, n, raw, nil, 0), nil
	}
	return array.NewFixedSizeBinary(dt, n, raw, valid, nullCount), nil
}
