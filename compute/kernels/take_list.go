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
	"github.com/go-kit/log/level"
)

// takeList implements for the variable-length list variant: the
// inner index ranges named by each gathered list slot are concatenated
// into one flat index array, which is recursively taken from the
// child; the result's own offsets are the prefix sums of gathered
// lengths.
//
// Validity is tracked explicitly rather than derived purely from
// "out_offsets[k+1] == out_offsets[k]" (the shortcut describes),
// because that equivalence cannot distinguish a null list slot from a
// genuinely empty but valid one; both produce a zero-length range.
func takeList(values *array.List, idx indices, cfg *config, parentOpts []Option) (array.Interface, error) {
	n := idx.Len()
	outOffsets := make([]int64, n+1)
	listIndices := make([]int64, 0, n)

	valid := bitutil.NewBitmap(n, true)
	nullCount := 0
	for k := 0; k < n; k++ {
		outOffsets[k] = int64(len(listIndices))
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
		start, end := values.ValueOffsets(int(ix))
		for j := start; j < end; j++ {
			listIndices = append(listIndices, j)
		}
	}
	outOffsets[n] = int64(len(listIndices))

	level.Debug(cfg.logger).Log("msg", "list gather recursing into child", "inner_indices", len(listIndices))
	innerIdx := array.NewPrimitive(listIndices, nil, 0)
	child, err := Take(array.MakeFromData(values.Child()), innerIdx, parentOpts...)
	if err != nil {
		return nil, err
	}

	lt := values.DataType().(arrow.ListType)
	if nullCount == 0 {
		valid = nil
	}
	if lt.Large {
		return array.NewLargeList(lt.Elem, n, outOffsets, child.Data(), valid, nullCount), nil
	}
	offsets32 := make([]int32, n+1)
	for i, o := range outOffsets {
		offsets32[i] = int32(o)
	}
	return array.NewList(lt.Elem, n, offsets32, child.Data(), valid, nullCount), nil
}

// takeFixedSizeList implements fixed-size variant: list_indices
// is computed directly from the fixed slot width L with no offsets
// buffer, and validity is explicit rather than derived.
func takeFixedSizeList(values *array.FixedSizeList, idx indices, cfg *config, parentOpts []Option) (array.Interface, error) {
	n := idx.Len()
	dt := values.DataType().(arrow.FixedSizeListType)
	l := dt.N
	listIndices := make([]int64, n*l)

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
		start, _ := values.ValueOffsets(int(ix))
		for j := 0; j < l; j++ {
			listIndices[k*l+j] = start + int64(j)
		}
	}

	innerIdx := array.NewPrimitive(listIndices, nil, 0)
	child, err := Take(array.MakeFromData(values.Child()), innerIdx, parentOpts...)
	if err != nil {
		return nil, err
	}

	if nullCount == 0 {
		return array.NewFixedSizeList(dt.Elem, l, n, child.Data(), nil, 0), nil
	}
	return array.NewFixedSizeList(dt.Elem, l, n, child.Data(), valid, nullCount), nil
}
