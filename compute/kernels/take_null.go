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

package kernels

import "github.com/colkit/columnio/arrow/array"

// takeNull is the null-array short-circuit: the result is a Null array
// of length indices.Len(). A Null array carries no buffers, so there is
// no backing storage to share either way; the only thing this avoids is
// validating indices against values at all, since Null has no payload
// to index out of bounds against.
func takeNull(values *array.Null, idx indices) array.Interface {
	return array.NewNull(idx.Len())
}
