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

// LevelDecoder is the capability set a definition- or repetition-level
// decoder exposes; ColumnReader is generic over this interface
// rather than type-switching on a concrete decoder, so it never
// branches on RLE vs BIT_PACKED - that choice is made once, by the
// caller, when it picks which concrete LevelDecoder to instantiate.
// RLE/bit-packed decoding itself is out of scope here; only this
// contract is defined.
type LevelDecoder interface {
	// Read decodes up to len(out) levels into out, returning the count
	// actually produced (fewer than len(out) only at end of segment).
	Read(out []int16) int
	// CountNulls reports how many of the n levels most recently
	// returned by Read are below maxLevel, i.e. represent a null.
	CountNulls(n int, maxLevel int16) int
}

// NewLevelDecoderFunc constructs a LevelDecoder bound to one level
// segment. ColumnReader takes one of these per level kind (def, rep) so
// it can build a fresh decoder each time read_new_page admits a page,
// without knowing which concrete decoder type it is building.
type NewLevelDecoderFunc[D LevelDecoder] func(maxLevel int16, enc parquet.Encoding, data []byte) (D, error)
