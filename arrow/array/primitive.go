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

// Primitive is the dense fixed-width variant for any Go numeric type in
// arrow.Numeric: buffers[0] is validity, buffers[1] is an N×sizeof(T)
// byte buffer cast to []T without copying.
type Primitive[T arrow.Numeric] struct{ base }

// NewPrimitiveData wraps an existing Data envelope typed as T.
func NewPrimitiveData[T arrow.Numeric](d *Data) *Primitive[T] { return &Primitive[T]{base{d}} }

// NewPrimitive builds a Primitive[T] array from a values slice and an
// optional validity bitmap.
func NewPrimitive[T arrow.Numeric](values []T, valid []byte, nullN int) *Primitive[T] {
	raw := arrow.CastToBytes(values)
	var buffers []*memory.Buffer
	if valid != nil {
		buffers = []*memory.Buffer{memory.NewBufferBytes(valid), memory.NewBufferBytes(raw)}
	} else {
		buffers = []*memory.Buffer{nil, memory.NewBufferBytes(raw)}
	}
	return &Primitive[T]{base{NewData(arrow.TypeOf[T](), len(values), buffers, nil, nullN, 0)}}
}

// Values returns the dense backing slice, including unspecified payload
// at null slots - the payload at a null slot is unspecified but must be
// a valid, readable T.
func (p *Primitive[T]) Values() []T {
	return arrow.CastFromBytes[T](p.data.buffers[1].Bytes())[p.data.offset : p.data.offset+p.data.length]
}

// Value returns the value at logical slot i, regardless of validity.
func (p *Primitive[T]) Value(i int) T { return p.Values()[i] }

var _ Interface = (*Primitive[int32])(nil)
