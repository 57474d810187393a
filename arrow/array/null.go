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

import "github.com/colkit/columnio/arrow"

// Null is the degenerate variant that carries only a length; every slot
// is null and no payload buffer exists at all.
type Null struct{ base }

// NewNull builds a length-n Null array. Because Null carries no buffers
// there is nothing to share or copy - every NewNull(n) call is already
// as cheap as sharing would be.
func NewNull(n int) *Null {
	return &Null{base{NewData(arrow.NullType, n, nil, nil, n, 0)}}
}

var _ Interface = (*Null)(nil)
