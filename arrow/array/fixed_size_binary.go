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

// FixedSizeBinary is the dense N×k byte variant.
type FixedSizeBinary struct{ base }

func (f *FixedSizeBinary) byteWidth() int {
	return f.data.dtype.(arrow.FixedSizeBinaryType).ByteWidth
}

// Value returns the raw k-byte slot at logical index i, regardless of
// validity.
func (f *FixedSizeBinary) Value(i int) []byte {
	w := f.byteWidth()
	off := (f.data.offset + i) * w
	return f.data.buffers[1].Bytes()[off : off+w]
}

// NewFixedSizeBinary builds a FixedSizeBinary array from a packed N×k
// byte buffer.
func NewFixedSizeBinary(dt arrow.FixedSizeBinaryType, n int, raw []byte, valid []byte, nullN int) *FixedSizeBinary {
	validBuf := (*memory.Buffer)(nil)
	if valid != nil {
		validBuf = memory.NewBufferBytes(valid)
	}
	buffers := []*memory.Buffer{validBuf, memory.NewBufferBytes(raw)}
	return &FixedSizeBinary{base{NewData(dt, n, buffers, nil, nullN, 0)}}
}

var _ Interface = (*FixedSizeBinary)(nil)
