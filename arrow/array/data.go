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

// Package array implements the tagged-union array value model: one
// Data envelope (validity bitmap, offset, buffers, children, optional
// dictionary) shared by every concrete variant type defined in this
// package.
package array

import (
	"github.com/colkit/columnio/arrow"
	"github.com/colkit/columnio/arrow/bitutil"
	"github.com/colkit/columnio/arrow/memory"
)

// Data is the variant-agnostic envelope described in: a logical
// length, an optional validity bitmap, a zero-copy slicing offset, and
// the variant-specific payload buffers/children/dictionary. Every
// concrete array type in this package is a thin, typed view over a Data.
type Data struct {
	dtype    arrow.DataType
	length   int
	nullN    int // -1 means "unknown, recompute from validity buffer"
	offset   int
	buffers  []*memory.Buffer // buffers[0] is always the validity bitmap or nil
	children []*Data
	dict     *Data // non-nil only for DictionaryType
}

// NewData builds a Data envelope. buffers[0] must be the validity bitmap
// (or nil, meaning "no nulls" for every type except NULL, whose slots
// are always null). nullN may be passed as -1 to
// have it computed lazily from the validity bitmap on first use.
func NewData(dtype arrow.DataType, length int, buffers []*memory.Buffer, children []*Data, nullN, offset int) *Data {
	return &Data{
		dtype:    dtype,
		length:   length,
		nullN:    nullN,
		offset:   offset,
		buffers:  buffers,
		children: children,
	}
}

// NewDataWithDictionary is NewData for a DictionaryType array: buffers
// describe the keys (a primitive array of the dictionary's index type)
// and dict is the shared values array.
func NewDataWithDictionary(dtype arrow.DataType, length int, buffers []*memory.Buffer, nullN, offset int, dict *Data) *Data {
	d := NewData(dtype, length, buffers, nil, nullN, offset)
	d.dict = dict
	return d
}

func (d *Data) DataType() arrow.DataType { return d.dtype }
func (d *Data) Len() int                 { return d.length }
func (d *Data) Offset() int              { return d.offset }
func (d *Data) Buffers() []*memory.Buffer { return d.buffers }
func (d *Data) Children() []*Data        { return d.children }
func (d *Data) Dictionary() *Data        { return d.dict }

// validityBuffer returns the raw validity bitmap bytes, or nil if the
// array has no validity buffer (all slots non-null).
func (d *Data) validityBuffer() []byte {
	if len(d.buffers) == 0 || d.buffers[0] == nil {
		return nil
	}
	return d.buffers[0].Bytes()
}

// HasValidityBitmap reports whether this Data carries an explicit
// validity bitmap (as opposed to the implicit "all valid" state).
func (d *Data) HasValidityBitmap() bool {
	return d.validityBuffer() != nil
}

// IsValid reports whether logical slot i (0 <= i < Len()) is non-null.
// Every slot of a NULL-typed array is null.
func (d *Data) IsValid(i int) bool {
	if d.dtype.ID() == arrow.NULL {
		return false
	}
	buf := d.validityBuffer()
	if buf == nil {
		return true
	}
	return bitutil.BitIsSet(buf, d.offset+i)
}

// IsNull is the complement of IsValid.
func (d *Data) IsNull(i int) bool { return !d.IsValid(i) }

// NullN returns the number of null slots in [offset, offset+length),
// computing and caching it from the validity bitmap the first time it
// is needed if the constructor was not told the count up front.
func (d *Data) NullN() int {
	if d.nullN >= 0 {
		return d.nullN
	}
	buf := d.validityBuffer()
	if buf == nil {
		d.nullN = 0
		return 0
	}
	set := bitutil.CountSetBits(buf, d.offset, d.length)
	d.nullN = d.length - set
	return d.nullN
}

// Interface is the common surface every concrete array variant exposes;
// gather routines and the take dispatcher operate against this plus a
// type switch/assertion to the concrete variant they know how to read.
type Interface interface {
	DataType() arrow.DataType
	Len() int
	NullN() int
	IsValid(i int) bool
	IsNull(i int) bool
	Data() *Data
}

// base is embedded by every concrete array type to satisfy the common
// parts of Interface.
type base struct {
	data *Data
}

func (a *base) DataType() arrow.DataType { return a.data.DataType() }
func (a *base) Len() int                 { return a.data.Len() }
func (a *base) NullN() int               { return a.data.NullN() }
func (a *base) IsValid(i int) bool       { return a.data.IsValid(i) }
func (a *base) IsNull(i int) bool        { return a.data.IsNull(i) }
func (a *base) Data() *Data              { return a.data }

// MakeFromData returns the concrete, typed Interface implementation for
// d, dispatching on d.DataType().ID(). It is the inverse of every
// concrete type's Data() method and is how gather routines in
// compute/kernels wrap freshly built Data envelopes before returning
// them to callers.
func MakeFromData(d *Data) Interface {
	switch dt := d.DataType().(type) {
	case arrow.NumericType:
		return makeNumeric(dt, d)
	default:
	}
	switch d.DataType().ID() {
	case arrow.NULL:
		return &Null{base{d}}
	case arrow.BOOL:
		return &Boolean{base{d}}
	case arrow.DECIMAL128:
		return &Decimal128{base{d}}
	case arrow.STRING, arrow.BINARY:
		return &Binary{base{d}}
	case arrow.LARGE_STRING, arrow.LARGE_BINARY:
		return &LargeBinary{base{d}}
	case arrow.FIXED_SIZE_BINARY:
		return &FixedSizeBinary{base{d}}
	case arrow.LIST, arrow.LARGE_LIST:
		return &List{base{d}}
	case arrow.FIXED_SIZE_LIST:
		return &FixedSizeList{base{d}}
	case arrow.STRUCT:
		return &Struct{base{d}}
	case arrow.DICTIONARY:
		return &Dictionary{base{d}}
	default:
		panic("array: unsupported data type " + d.DataType().String())
	}
}

func makeNumeric(dt arrow.NumericType, d *Data) Interface {
	switch dt.ID() {
	case arrow.INT8:
		return &Primitive[int8]{base{d}}
	case arrow.UINT8:
		return &Primitive[uint8]{base{d}}
	case arrow.INT16:
		return &Primitive[int16]{base{d}}
	case arrow.UINT16:
		return &Primitive[uint16]{base{d}}
	case arrow.INT32:
		return &Primitive[int32]{base{d}}
	case arrow.UINT32:
		return &Primitive[uint32]{base{d}}
	case arrow.INT64:
		return &Primitive[int64]{base{d}}
	case arrow.UINT64:
		return &Primitive[uint64]{base{d}}
	case arrow.FLOAT32:
		return &Primitive[float32]{base{d}}
	case arrow.FLOAT64:
		return &Primitive[float64]{base{d}}
	default:
		panic("array: unsupported numeric type " + dt.String())
	}
}
