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

package array

import (
	"github.com/colkit/columnio/arrow"
	"github.com/colkit/columnio/arrow/memory"
)

// FixedSizeList is a list whose every element has exactly N child
// slots; there is no offsets buffer, slot k's elements live at
// Child()[k*N : (k+1)*N].
type FixedSizeList struct{ base }

func (f *FixedSizeList) listSize() int { return f.data.dtype.(arrow.FixedSizeListType).N }

// Child returns the flattened element array, logical length N*L.
func (f *FixedSizeList) Child() *Data { return f.data.children[0] }

// ValueOffsets returns the [start, end) child range for logical slot i.
func (f *FixedSizeList) ValueOffsets(i int) (start, end int64) {
	l := int64(f.listSize())
	idx := int64(f.data.offset + i)
	return idx * l, (idx + 1) * l
}

// NewFixedSizeList builds a FixedSizeList array over child.
func NewFixedSizeList(elem arrow.DataType, listSize, n int, child *Data, valid []byte, nullN int) *FixedSizeList {
	validBuf := (*memory.Buffer)(nil)
	if valid != nil {
		validBuf = memory.NewBufferBytes(valid)
	}
	d := NewData(arrow.FixedSizeListType{Elem: elem, N: listSize}, n, []*memory.Buffer{validBuf}, []*Data{child}, nullN, 0)
	return &FixedSizeList{base{d}}
}

var _ Interface = (*FixedSizeList)(nil)
