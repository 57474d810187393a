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

// takeStruct implements struct recursion: each child column is
// taken with the same indices, and the result's own validity is
// `B[k] = V.is_valid(I[k]) ∧ I[k] non-null`.
func takeStruct(values *array.Struct, idx indices, rawIndices array.Interface, opts []Option) (array.Interface, error) {
	n := idx.Len()
	dt := values.DataType().(arrow.StructType)

	children := make([]*array.Data, values.NumField())
	for i := 0; i < values.NumField(); i++ {
		child, err := Take(array.MakeFromData(values.Field(i)), rawIndices, opts...)
		if err != nil {
			return nil, err
		}
		children[i] = child.Data()
	}

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
	}

	if nullCount == 0 {
		return array.NewStruct(dt.Fields, n, children, nil, 0), nil
	}
	return array.NewStruct(dt.Fields, n, children, valid, nullCount), nil
}
