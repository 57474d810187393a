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

package file

import "github.com/colkit/columnio/parquet"

// ValuesBufferSlice is the caller-owned destination buffer a
// ValueDecoder writes decoded values into; ColumnReader never owns or
// allocates it. Concrete decoders type-assert this to the slice type
// they expect ([]int32, []parquet.ByteArrayValue, ...) - the plain
// value type a physical column decodes to is outside this module's
// scope, so the interface stays untyped here the same way io.Reader's
// Read(p []byte) leaves interpretation of p to the caller.
type ValuesBufferSlice interface{}

// ValueDecoder is the capability set a column's value decoder exposes.
// ColumnReader is generic over this interface so it dispatches to
// PLAIN, dictionary, or any other value encoding without a type
// switch; decoding the bytes themselves is out of scope here.
type ValueDecoder interface {
	// SetDict installs a dictionary page's decoded contents, called
	// once per dictionary page before any data page referencing it.
	SetDict(buf []byte, numValues int, enc parquet.Encoding, isSorted bool)
	// SetData points the decoder at the value-bytes of a newly admitted
	// data page. numNonNull is the count of non-null values when known
	// up front (DataPage v2's num_values - num_nulls); nil when it must
	// be inferred from how many values SetData's caller later asks for
	// (DataPage v1, "None").
	SetData(enc parquet.Encoding, data []byte, numValues int, numNonNull *int)
	// Read decodes up to the requested range's length of dense,
	// non-null values into out, returning the count actually produced.
	// out begins at the slot where the first decoded value belongs.
	Read(out ValuesBufferSlice, rangeLen int) int
}
