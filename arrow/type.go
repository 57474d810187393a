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

// Package arrow defines the logical type system shared by the array and
// compute packages: a tagged enumeration of supported variants plus the
// concrete DataType values that carry each variant's fixed parameters
// (byte width, offset width, child fields, dictionary value type).
package arrow

import "fmt"

// Type is the tag of the array variant union.
type Type int

const (
	NULL Type = iota
	BOOL
	INT8
	UINT8
	INT16
	UINT16
	INT32
	UINT32
	INT64
	UINT64
	FLOAT32
	FLOAT64
	DECIMAL128
	STRING
	LARGE_STRING
	BINARY
	LARGE_BINARY
	FIXED_SIZE_BINARY
	LIST
	LARGE_LIST
	FIXED_SIZE_LIST
	STRUCT
	DICTIONARY
)

func (t Type) String() string {
	switch t {
	case NULL:
		return "null"
	case BOOL:
		return "bool"
	case INT8:
		return "int8"
	case UINT8:
		return "uint8"
	case INT16:
		return "int16"
	case UINT16:
		return "uint16"
	case INT32:
		return "int32"
	case UINT32:
		return "uint32"
	case INT64:
		return "int64"
	case UINT64:
		return "uint64"
	case FLOAT32:
		return "float32"
	case FLOAT64:
		return "float64"
	case DECIMAL128:
		return "decimal128"
	case STRING:
		return "utf8"
	case LARGE_STRING:
		return "large_utf8"
	case BINARY:
		return "binary"
	case LARGE_BINARY:
		return "large_binary"
	case FIXED_SIZE_BINARY:
		return "fixed_size_binary"
	case LIST:
		return "list"
	case LARGE_LIST:
		return "large_list"
	case FIXED_SIZE_LIST:
		return "fixed_size_list"
	case STRUCT:
		return "struct"
	case DICTIONARY:
		return "dictionary"
	}
	return "invalid"
}

// DataType describes the fixed, per-column-shape parameters of one array
// variant. It carries no data, only the metadata needed to interpret the
// buffers of an array.Data built with it.
type DataType interface {
	ID() Type
	Name() string
	fmt.Stringer
}

// FixedWidthDataType is a DataType whose values occupy BitWidth() bits
// per slot in a dense buffer (as opposed to offset + value-bytes layouts).
type FixedWidthDataType interface {
	DataType
	BitWidth() int
}

// OffsetWidthDataType distinguishes 32-bit ("i32") from 64-bit ("i64")
// offset buffers for string/binary/list variants
type OffsetWidthDataType interface {
	DataType
	OffsetByteWidth() int
}

// Field describes one named, typed child of a Struct array.
type Field struct {
	Name     string
	Type     DataType
	Nullable bool
}

type booleanType struct{}

func (booleanType) ID() Type        { return BOOL }
func (booleanType) Name() string    { return "bool" }
func (booleanType) String() string  { return "bool" }
func (booleanType) BitWidth() int   { return 1 }

// BooleanType is the packed-bitmap boolean variant.
var BooleanType FixedWidthDataType = booleanType{}

type nullType struct{}

func (nullType) ID() Type       { return NULL }
func (nullType) Name() string   { return "null" }
func (nullType) String() string { return "null" }

// NullType is the degenerate variant that carries only a length.
var NullType DataType = nullType{}

// NumericType is a fixed-width numeric DataType; one singleton instance
// exists per Go numeric type usable as array.Primitive[T]'s parameter
// (see traits.go for the T -> NumericType mapping).
type NumericType struct {
	id       Type
	bitWidth int
}

func (n NumericType) ID() Type        { return n.id }
func (n NumericType) Name() string    { return n.id.String() }
func (n NumericType) String() string  { return n.id.String() }
func (n NumericType) BitWidth() int   { return n.bitWidth }

var (
	Int8Type    = NumericType{INT8, 8}
	Uint8Type   = NumericType{UINT8, 8}
	Int16Type   = NumericType{INT16, 16}
	Uint16Type  = NumericType{UINT16, 16}
	Int32Type   = NumericType{INT32, 32}
	Uint32Type  = NumericType{UINT32, 32}
	Int64Type   = NumericType{INT64, 64}
	Uint64Type  = NumericType{UINT64, 64}
	Float32Type = NumericType{FLOAT32, 32}
	Float64Type = NumericType{FLOAT64, 64}
)

// Decimal128Type carries the (precision, scale) pair for a 16-byte-wide
// decimal array
type Decimal128Type struct {
	Precision int32
	Scale     int32
}

func (Decimal128Type) ID() Type        { return DECIMAL128 }
func (Decimal128Type) Name() string    { return "decimal128" }
func (d Decimal128Type) String() string { return fmt.Sprintf("decimal128(%d, %d)", d.Precision, d.Scale) }
func (Decimal128Type) BitWidth() int   { return 128 }

// BinaryType is the variable-length binary/string family. IsString toggles
// whether the value bytes are interpreted as UTF-8 (for error messages and
// downstream consumers only - take never validates encoding). Large toggles
// between i32 and i64 offsets.
type BinaryType struct {
	IsString bool
	Large    bool
}

func (b BinaryType) ID() Type {
	switch {
	case b.IsString && b.Large:
		return LARGE_STRING
	case b.IsString:
		return STRING
	case b.Large:
		return LARGE_BINARY
	default:
		return BINARY
	}
}
func (b BinaryType) Name() string      { return b.ID().String() }
func (b BinaryType) String() string    { return b.ID().String() }
func (b BinaryType) OffsetByteWidth() int {
	if b.Large {
		return 8
	}
	return 4
}

// FixedSizeBinaryType is the dense N×k byte variant.
type FixedSizeBinaryType struct {
	ByteWidth int
}

func (FixedSizeBinaryType) ID() Type         { return FIXED_SIZE_BINARY }
func (FixedSizeBinaryType) Name() string     { return "fixed_size_binary" }
func (f FixedSizeBinaryType) String() string { return fmt.Sprintf("fixed_size_binary[%d]", f.ByteWidth) }
func (f FixedSizeBinaryType) BitWidth() int  { return f.ByteWidth * 8 }

// ListType is the variable-length list variant with an i32 or i64 offsets
// buffer and a single child element type.
type ListType struct {
	Elem  DataType
	Large bool
}

func (l ListType) ID() Type {
	if l.Large {
		return LARGE_LIST
	}
	return LIST
}
func (l ListType) Name() string   { return l.ID().String() }
func (l ListType) String() string { return fmt.Sprintf("%s<%s>", l.ID(), l.Elem) }
func (l ListType) OffsetByteWidth() int {
	if l.Large {
		return 8
	}
	return 4
}

// FixedSizeListType is a list whose every element has exactly N child
// entries, so no offsets buffer is needed.
type FixedSizeListType struct {
	Elem DataType
	N    int
}

func (FixedSizeListType) ID() Type       { return FIXED_SIZE_LIST }
func (FixedSizeListType) Name() string   { return "fixed_size_list" }
func (f FixedSizeListType) String() string { return fmt.Sprintf("fixed_size_list<%s>[%d]", f.Elem, f.N) }

// StructType is a parent of K named children all sharing the struct's
// logical length.
type StructType struct {
	Fields []Field
}

func (StructType) ID() Type       { return STRUCT }
func (StructType) Name() string   { return "struct" }
func (s StructType) String() string {
	return fmt.Sprintf("struct<%d fields>", len(s.Fields))
}

// DictionaryType pairs an integral key DataType with an arbitrary value
// (dictionary) DataType
type DictionaryType struct {
	IndexType DataType
	ValueType DataType
	Ordered   bool
}

func (DictionaryType) ID() Type     { return DICTIONARY }
func (DictionaryType) Name() string { return "dictionary" }
func (d DictionaryType) String() string {
	return fmt.Sprintf("dictionary<values=%s, indices=%s>", d.ValueType, d.IndexType)
}
