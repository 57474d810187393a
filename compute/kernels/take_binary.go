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

// takeBinary implements single-pass string/binary gather: a
// running offset accumulates as values are appended to a geometrically
// grown values buffer, so the kernel never prescans total byte length.
func takeBinary(values *array.Binary, idx indices) (array.Interface, error) {
	n := idx.Len()
	offsets := make([]int32, n+1)
	out := make([]byte, 0, n*8)
	dt := values.DataType().(arrow.BinaryType)

	valid := bitutil.NewBitmap(n, true)
	nullCount := 0
	for k := 0; k < n; k++ {
		offsets[k] = int32(len(out))
		switch {
		case !idx.IsValid(k):
			bitutil.ClearBit(valid, k)
			nullCount++
		default:
			ix, ok := idx.At(k)
			if !ok {
				return nil, ErrCastToUsize()
			}
			if values.IsNull(int(ix)) {
				bitutil.ClearBit(valid, k)
				nullCount++
				continue
			}
			out = append(out, values.Value(int(ix))...)
		}
	}
	offsets[n] = int32(len(out))

	if nullCount == 0 {
		return array.NewBinary(dt, n, offsets, out, nil, 0), nil
	}
	return array.NewBinary(dt, n, offsets, out, valid, nullCount), nil
}

// takeLargeBinary is takeBinary with i64 offsets.
func takeLargeBinary(values *array.LargeBinary, idx indices) (array.Interface, error) {
	n := idx.Len()
	offsets := make([]int64, n+1)
	out := make([]byte, 0, n*8)
	dt := values.DataType().(arrow.BinaryType)

	valid := bitutil.NewBitmap(n, true)
	nullCount := 0
	for k := 0; k < n; k++ {
		offsets[k] = int64(len(out))
		switch {
		case !idx.IsValid(k):
			bitutil.ClearBit(valid, k)
			nullCount++
		default:
			ix, ok := idx.At(k)
			if !ok {
				return nil, ErrCastToUsize()
			}
			if values.IsNull(int(ix)) {
				bitutil.ClearBit(valid, k)
				nullCount++
				continue
			}
			out = append(out, values.Value(int(ix))...)
		}
	}
	offsets[n] = int64(len(out))

	if nullCount == 0 {
		return array.NewLargeBinary(dt, n, offsets, out, nil, 0), nil
	}
	return array.NewLargeBinary(dt, n, offsets, out, valid, nullCount), nil
}
