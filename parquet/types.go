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

// Package parquet defines the physical-type and encoding vocabulary
// shared by the column page reader in parquet/file, plus the column
// descriptor a caller builds to drive it. File footer parsing, thrift
// decoding, and the encoding/compression codecs themselves are out of
// scope; this package only names the enums those codecs would
// otherwise be keyed on.
package parquet

// Type is a column's physical on-disk representation.
type Type int

const (
	Boolean Type = iota
	Int32
	Int64
	Int96
	Float
	Double
	ByteArray
	FixedLenByteArray
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Int96:
		return "INT96"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case ByteArray:
		return "BYTE_ARRAY"
	case FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// Encoding names a value or level encoding. Only RLE and BitPacked are
// interpreted by this module, for level framing; every other value
// names a value encoding whose decoding is a ValueDecoder's concern,
// entirely outside this module.
type Encoding int

const (
	Plain Encoding = iota
	PlainDictionary
	RLE
	BitPacked
	DeltaBinaryPacked
	DeltaLengthByteArray
	DeltaByteArray
	RLEDictionary
	ByteStreamSplit
)

func (e Encoding) String() string {
	switch e {
	case Plain:
		return "PLAIN"
	case PlainDictionary:
		return "PLAIN_DICTIONARY"
	case RLE:
		return "RLE"
	case BitPacked:
		return "BIT_PACKED"
	case DeltaBinaryPacked:
		return "DELTA_BINARY_PACKED"
	case DeltaLengthByteArray:
		return "DELTA_LENGTH_BYTE_ARRAY"
	case DeltaByteArray:
		return "DELTA_BYTE_ARRAY"
	case RLEDictionary:
		return "RLE_DICTIONARY"
	case ByteStreamSplit:
		return "BYTE_STREAM_SPLIT"
	default:
		return "UNKNOWN"
	}
}

// ByteArrayValue is a variable-length value of a BYTE_ARRAY column.
type ByteArrayValue []byte

// FixedLenByteArrayValue is a fixed-width value of a FIXED_LEN_BYTE_ARRAY
// column; its width is carried on the ColumnDescriptor, not the value.
type FixedLenByteArrayValue []byte
