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

// Package decimal128 defines the 16-byte payload format backing
// arrow.Decimal128Type arrays.
package decimal128

import "encoding/binary"

// Num is a 128-bit signed decimal value split into high and low 64-bit
// words, little-endian byte order on the wire, matching the byte order
// used for every other dense buffer in this module.
type Num struct {
	Hi int64
	Lo uint64
}

// FromBytes reads one 16-byte decimal slot.
func FromBytes(b []byte) Num {
	return Num{
		Lo: binary.LittleEndian.Uint64(b[0:8]),
		Hi: int64(binary.LittleEndian.Uint64(b[8:16])),
	}
}

// PutBytes writes a 16-byte decimal slot.
func (n Num) PutBytes(b []byte) {
	binary.LittleEndian.PutUint64(b[0:8], n.Lo)
	binary.LittleEndian.PutUint64(b[8:16], uint64(n.Hi))
}

// ByteWidth is the fixed payload size of one decimal128 slot.
const ByteWidth = 16
