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

// Binary is the variable-length string/binary variant with i32 offsets:
// buffers are [validity, offsets(N+1 x i32), values].
type Binary struct{ base }

// LargeBinary is the same layout with i64 offsets.
type LargeBinary struct{ base }

func (b *Binary) offsets() []int32 {
	return arrow.CastFromBytes[int32](b.data.buffers[1].Bytes())
}

// ValueOffset returns the start byte offset of logical slot i into the
// values buffer.
func (b *Binary) ValueOffset(i int) int32 { return b.offsets()[b.data.offset+i] }

// ValueLen returns the byte length of logical slot i.
func (b *Binary) ValueLen(i int) int32 {
	off := b.offsets()
	return off[b.data.offset+i+1] - off[b.data.offset+i]
}

// Value returns the raw bytes (not copied) at logical slot i, regardless
// of validity.
func (b *Binary) Value(i int) []byte {
	start, end := b.ValueOffset(i), b.ValueOffset(i)+b.ValueLen(i)
	return b.data.buffers[2].Bytes()[start:end]
}

// ValueString is a convenience accessor for STRING-typed Binary arrays.
func (b *Binary) ValueString(i int) string { return string(b.Value(i)) }

// NewBinary builds a Binary array. offsets has length n+1 and must be
// monotone non-decreasing with offsets[0] == 0.
func NewBinary(dt arrow.BinaryType, n int, offsets []int32, values []byte, valid []byte, nullN int) *Binary {
	var buffers []*memory.Buffer
	validBuf := (*memory.Buffer)(nil)
	if valid != nil {
		validBuf = memory.NewBufferBytes(valid)
	}
	buffers = []*memory.Buffer{validBuf, memory.NewBufferBytes(arrow.CastToBytes(offsets)), memory.NewBufferBytes(values)}
	return &Binary{base{NewData(dt, n, buffers, nil, nullN, 0)}}
}

func (b *LargeBinary) offsets() []int64 {
	return arrow.CastFromBytes[int64](b.data.buffers[1].Bytes())
}

func (b *LargeBinary) ValueOffset(i int) int64 { return b.offsets()[b.data.offset+i] }

func (b *LargeBinary) ValueLen(i int) int64 {
	off := b.offsets()
	return off[b.data.offset+i+1] - off[b.data.offset+i]
}

func (b *LargeBinary) Value(i int) []byte {
	start, end := b.ValueOffset(i), b.ValueOffset(i)+b.ValueLen(i)
	return b.data.buffers[2].Bytes()[start:end]
}

func (b *LargeBinary) ValueString(i int) string { return string(b.Value(i)) }

func NewLargeBinary(dt arrow.BinaryType, n int, offsets []int64, values []byte, valid []byte, nullN int) *LargeBinary {
	validBuf := (*memory.Buffer)(nil)
	if valid != nil {
		validBuf = memory.NewBufferBytes(valid)
	}
	buffers := []*memory.Buffer{validBuf, memory.NewBufferBytes(arrow.CastToBytes(offsets)), memory.NewBufferBytes(values)}
	return &LargeBinary{base{NewData(dt, n, buffers, nil, nullN, 0)}}
}

var (
	_ Interface = (*Binary)(nil)
	_ Interface = (*LargeBinary)(nil)
)
