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

// Dictionary pairs an integral keys array with a single shared values
// array. The keys carry their own validity bitmap; a null key means the
// logical slot is null regardless of what it would index into values.
type Dictionary struct{ base }

// Keys returns the underlying index array (one of the signed/unsigned
// integer Primitive variants).
func (d *Dictionary) Keys() Interface {
	return MakeFromData(NewData(d.data.dtype.(arrow.DictionaryType).IndexType, d.data.length, d.data.buffers, nil, d.data.nullN, d.data.offset))
}

// Dictionary returns the shared values array every key indexes into.
func (d *Dictionary) Dictionary() Interface { return MakeFromData(d.data.dict) }

// NewDictionary builds a Dictionary array from a keys buffer (already
// encoded at the index type's width) and a shared values Data.
func NewDictionary(dt arrow.DictionaryType, n int, keyBuffers []*memory.Buffer, values *Data, nullN, offset int) *Dictionary {
	d := NewDataWithDictionary(dt, n, keyBuffers, nullN, offset, values)
	return &Dictionary{base{d}}
}

var _ Interface = (*Dictionary)(nil)
