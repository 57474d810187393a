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

// Struct is K named children of a shared logical length N, with the
// parent's own validity bitmap layered atop each field's own: a slot
// can be null at the struct level even when every field holds a value.
type Struct struct{ base }

// Field returns the i'th child column.
func (s *Struct) Field(i int) *Data { return s.data.children[i] }

// NumField returns the number of child columns.
func (s *Struct) NumField() int { return len(s.data.children) }

// NewStruct builds a Struct array over children, all of logical length n.
func NewStruct(fields []arrow.Field, n int, children []*Data, valid []byte, nullN int) *Struct {
	validBuf := (*memory.Buffer)(nil)
	if valid != nil {
		validBuf = memory.NewBufferBytes(valid)
	}
	d := NewData(arrow.StructType{Fields: fields}, n, []*memory.Buffer{validBuf}, children, nullN, 0)
	return &Struct{base{d}}
}

var _ Interface = (*Struct)(nil)
