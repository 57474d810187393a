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

import (
	"github.com/colkit/columnio/arrow"
	"github.com/colkit/columnio/arrow/array"
)

// takeDictionary implements dictionary short-circuit:
// take(Dict{K,V}, I) ≡ Dict{K,V} whose keys are take_primitive(old_keys,
// I) and whose values buffer is shared unchanged. Result validity is
// the gathered keys' validity.
func takeDictionary(values *array.Dictionary, idx indices, cfg *config) (array.Interface, error) {
	dt := values.DataType().(arrow.DictionaryType)
	keys := values.Keys()

	gathered, err := takeKeys(keys, idx)
	if err != nil {
		return nil, err
	}

	n := idx.Len()
	return array.NewDictionary(dt, n, gathered.Data().Buffers(), values.Data().Dictionary(), gathered.NullN(), 0), nil
}

// takeKeys dispatches the keys array (always an integral Primitive) to
// takePrimitive via a single type switch instead of one code path per
// index width.
func takeKeys(keys array.Interface, idx indices) (array.Interface, error) {
	switch k := keys.(type) {
	case *array.Primitive[int8]:
		return takePrimitive[int8](k, idx)
	case *array.Primitive[uint8]:
		return takePrimitive[uint8](k, idx)
	case *array.Primitive[int16]:
		return takePrimitive[int16](k, idx)
	case *array.Primitive[uint16]:
		return takePrimitive[uint16](k, idx)
	case *array.Primitive[int32]:
		return takePrimitive[int32](k, idx)
	case *array.Primitive[uint32]:
		return takePrimitive[uint32](k, idx)
	case *array.Primitive[int64]:
		return takePrimitive[int64](k, idx)
	case *array.Primitive[uint64]:
		return takePrimitive[uint64](k, idx)
	default:
		return nil, ErrNotImplemented("dictionary key type " + keys.DataType().String())
	}
}
