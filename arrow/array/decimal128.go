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
	"github.com/colkit/columnio/arrow/decimal128"
	"github.com/colkit/columnio/arrow/memory"
)

// Decimal128 is the dense N×16-byte decimal variant, carrying its
// DataType's (precision, scale) alongside the raw buffer.
type Decimal128 struct{ base }

// Value returns the decoded decimal at logical slot i, regardless of
// validity.
func (d *Decimal128) Value(i int) decimal128.Num {
	off := (d.data.offset + i) * decimal128.ByteWidth
	return decimal128.FromBytes(d.data.buffers[1].Bytes()[off : off+decimal128.ByteWidth])
}

// ValueBytes returns the raw 16-byte slot without decoding, used by
// gather routines that just need to copy bytes.
func (d *Decimal128) ValueBytes(i int) []byte {
	off := (d.data.offset + i) * decimal128.ByteWidth
	return d.data.buffers[1].Bytes()[off : off+decimal128.ByteWidth]
}

// NewDecimal128 builds a Decimal128 array from a packed N×16 byte
// buffer and an optional validity bitmap.
func NewDecimal128(dt arrow.Decimal128Type, n int, raw []byte, valid []byte, nullN int) *Decimal128 {
	var buffers []*memory.Buffer
	if valid != nil {
		buffers = []*memory.Buffer{memory.NewBufferBytes(valid), memory.NewBufferBytes(raw)}
	} else {
		buffers = []*memory.Buffer{nil, memory.NewBufferBytes(raw)}
	}
	return &Decimal128{base{NewData(dt, n, buffers, nil, nullN, 0)}}
}

var _ Interface = (*Decimal128)(nil)
