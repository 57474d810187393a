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

// List is the variable-length list variant: buffers are
// [validity, offsets(N+1)], with a single flattened child array holding
// every list's elements concatenated. Offsets may be i32 or i64,
// selected by the ListType's Large flag; both LIST and LARGE_LIST ids
// are represented by this one type to avoid duplicating the gather
// logic in compute/kernels for a detail that is only the offset width.
type List struct{ base }

func (l *List) large() bool { return l.data.dtype.(arrow.ListType).Large }

// Child returns the flattened element array.
func (l *List) Child() *Data { return l.data.children[0] }

// ValueOffsets returns the start/end element range for logical slot i
// into Child().
func (l *List) ValueOffsets(i int) (start, end int64) {
	if l.large() {
		off := arrow.CastFromBytes[int64](l.data.buffers[1].Bytes())
		return off[l.data.offset+i], off[l.data.offset+i+1]
	}
	off := arrow.CastFromBytes[int32](l.data.buffers[1].Bytes())
	return int64(off[l.data.offset+i]), int64(off[l.data.offset+i+1])
}

// NewList builds a List array (i32 offsets) over child.
func NewList(elem arrow.DataType, n int, offsets []int32, child *Data, valid []byte, nullN int) *List {
	validBuf := (*memory.Buffer)(nil)
	if valid != nil {
		validBuf = memory.NewBufferBytes(valid)
	}
	buffers := []*memory.Buffer{validBuf, memory.NewBufferBytes(arrow.CastToBytes(offsets))}
	d := NewData(arrow.ListType{Elem: elem, Large: false}, n, buffers, []*Data{child}, nullN, 0)
	return &List{base{d}}
}

// NewLargeList builds a List array with i64 offsets over child.
func NewLargeList(elem arrow.DataType, n int, offsets []int64, child *Data, valid []byte, nullN int) *List {
	validBuf := (*memory.Buffer)(nil)
	if valid != nil {
		validBuf = memory.NewBufferBytes(valid)
	}
	buffers := []*memory.Buffer{validBuf, memory.NewBufferBytes(arrow.CastToBytes(offsets))}
	d := NewData(arrow.ListType{Elem: elem, Large: true}, n, buffers, []*Data{child}, nullN, 0)
	return &List{base{d}}
}

var _ Interface = (*List)(nil)
