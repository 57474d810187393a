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
	"github.com/colkit/columnio/arrow/bitutil"
	"github.com/colkit/columnio/arrow/memory"
)

// Boolean is the packed-bitmap boolean variant: buffers[0] is validity,
// buffers[1] is the packed value bitmap.
type Boolean struct{ base }

func NewBooleanData(d *Data) *Boolean { return &Boolean{base{d}} }

// Value returns the value bit at logical slot i, regardless of validity.
func (b *Boolean) Value(i int) bool {
	return bitutil.BitIsSet(b.data.buffers[1].Bytes(), b.data.offset+i)
}

// NewBoolean constructs a Boolean array from a values bitmap and an
// optional validity bitmap, both already offset-0 packed bitmaps of
// length n bits.
func NewBoolean(n int, values []byte, valid []byte, nullN int) *Boolean {
	var buffers []*memory.Buffer
	if valid != nil {
		buffers = []*memory.Buffer{memory.NewBufferBytes(valid), memory.NewBufferBytes(values)}
	} else {
		buffers = []*memory.Buffer{nil, memory.NewBufferBytes(values)}
	}
	return &Boolean{base{NewData(arrow.BooleanType, n, buffers, nil, nullN, 0)}}
}

var _ Interface = (*Boolean)(nil)
