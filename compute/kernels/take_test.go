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

package kernels_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colkit/columnio/arrow"
	"github.com/colkit/columnio/arrow/array"
	"github.com/colkit/columnio/compute/kernels"
)

func validityOf(n int, nullAt map[int]bool) []byte {
	buf := make([]byte, (n+7)/8)
	for i := 0; i < n; i++ {
		if !nullAt[i] {
			buf[i/8] |= 1 << uint(i%8)
		}
	}
	return buf
}

func strArray(vals []string, nullAt map[int]bool) *array.Binary {
	offsets := make([]int32, len(vals)+1)
	var data []byte
	for i, v := range vals {
		offsets[i] = int32(len(data))
		if !nullAt[i] {
			data = append(data, v...)
		}
	}
	offsets[len(vals)] = int32(len(data))
	var valid []byte
	n := 0
	if len(nullAt) > 0 {
		valid = validityOf(len(vals), nullAt)
		n = len(nullAt)
	}
	return array.NewBinary(arrow.BinaryType{IsString: true}, len(vals), offsets, data, valid, n)
}

// Scenario 1: take(["zero","one","two"], [2,1]) = ["two","one"].
func TestTakeStringScenario1(t *testing.T) {
	values := strArray([]string{"zero", "one", "two"}, nil)
	indices := array.NewPrimitive([]int32{2, 1}, nil, 0)

	got, err := kernels.Take(values, indices)
	require.NoError(t, err)

	result := got.(*array.Binary)
	require.Equal(t, 2, result.Len())
	assert.Equal(t, "two", result.ValueString(0))
	assert.Equal(t, "one", result.ValueString(1))
}

// Scenario 2: take([0,null,2,3,null], [3,null,1,3,2]) = [3,null,null,3,2].
func TestTakePrimitiveScenario2(t *testing.T) {
	values := array.NewPrimitive([]int32{0, 0, 2, 3, 0}, validityOf(5, map[int]bool{1: true, 4: true}), 2)
	indices := array.NewPrimitive([]int32{3, 0, 1, 3, 2}, validityOf(5, map[int]bool{1: true}), 1)

	got, err := kernels.Take(values, indices)
	require.NoError(t, err)

	result := got.(*array.Primitive[int32])
	require.Equal(t, 5, result.Len())
	assert.False(t, result.IsNull(0))
	assert.Equal(t, int32(3), result.Value(0))
	assert.True(t, result.IsNull(1))
	assert.True(t, result.IsNull(2)) // indices[2]=1 -> values[1] is null
	assert.False(t, result.IsNull(3))
	assert.Equal(t, int32(3), result.Value(3))
	assert.False(t, result.IsNull(4))
	assert.Equal(t, int32(2), result.Value(4))
}

// Scenario 3: dictionary short-circuit, values buffer shared unchanged.
func TestTakeDictionaryScenario3(t *testing.T) {
	valuesArr := strArray([]string{"foo", "bar", ""}, nil)
	keys := array.NewPrimitive([]int8{0, 0, 1, 0, 0, 1, 1, 0}, validityOf(8, map[int]bool{3: true}), 1)
	dict := array.NewDictionary(
		arrow.DictionaryType{IndexType: arrow.Int8Type, ValueType: arrow.BinaryType{IsString: true}},
		8, keys.Data().Buffers(), valuesArr.Data(), keys.NullN(), 0,
	)

	indices := array.NewPrimitive([]int32{0, 7, 0, 5, 6, 2, 3}, validityOf(7, map[int]bool{2: true}), 1)
	got, err := kernels.Take(dict, indices)
	require.NoError(t, err)

	result := got.(*array.Dictionary)
	resultKeys := result.Keys().(*array.Primitive[int8])
	require.Equal(t, 7, resultKeys.Len())
	assert.False(t, resultKeys.IsNull(0))
	assert.Equal(t, int8(0), resultKeys.Value(0))
	assert.False(t, resultKeys.IsNull(1))
	assert.Equal(t, int8(0), resultKeys.Value(1))
	assert.True(t, resultKeys.IsNull(2))
	assert.False(t, resultKeys.IsNull(3))
	assert.Equal(t, int8(1), resultKeys.Value(3))
	assert.False(t, resultKeys.IsNull(4))
	assert.Equal(t, int8(1), resultKeys.Value(4))
	assert.True(t, resultKeys.IsNull(6))

	// values buffer is shared unchanged by the dictionary short-circuit.
	assert.Same(t, valuesArr.Data(), result.Data().Dictionary())
}

// Scenario 4: list gather.
func TestTakeListScenario4(t *testing.T) {
	child := array.NewPrimitive([]int32{0, 0, 0, -1, -2, -1, 2, 3}, nil, 0)
	offsets := []int32{0, 3, 6, 8}
	values := array.NewList(arrow.Int32Type, 3, offsets, child.Data(), nil, 0)

	indices := array.NewPrimitive([]int32{2, 0, 1, 2, 0}, validityOf(5, map[int]bool{1: true}), 1)
	got, err := kernels.Take(values, indices)
	require.NoError(t, err)

	result := got.(*array.List)
	require.Equal(t, 5, result.Len())
	assert.True(t, result.IsNull(1))

	wantRanges := [][]int32{{2, 3}, {}, {-1, -2, -1}, {2, 3}, {0, 0, 0}}
	childArr := array.MakeFromData(result.Child()).(*array.Primitive[int32])
	for k := 0; k < 5; k++ {
		if k == 1 {
			continue
		}
		start, end := result.ValueOffsets(k)
		var got []int32
		for i := start; i < end; i++ {
			got = append(got, childArr.Value(int(i)))
		}
		assert.Equal(t, wantRanges[k], got, "slot %d", k)
	}
}

// Scenario 5: null array short-circuit, plus bounds checking.
func TestTakeNullScenario5(t *testing.T) {
	values := array.NewNull(5)
	indices := array.NewPrimitive([]int32{0, 0, 15}, validityOf(3, map[int]bool{1: true}), 1)

	got, err := kernels.Take(values, indices)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Len())

	_, err = kernels.Take(values, indices, kernels.WithCheckBounds(true))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "15"))
	assert.True(t, strings.Contains(err.Error(), "5 entries"))
}

// Take preserves length: the result always has as many slots as indices.
func TestTakePreservesLength(t *testing.T) {
	values := array.NewPrimitive([]int64{10, 20, 30, 40}, nil, 0)
	indices := array.NewPrimitive([]uint32{0, 0, 0, 0, 0, 0}, nil, 0)
	got, err := kernels.Take(values, indices)
	require.NoError(t, err)
	assert.Equal(t, indices.Len(), got.Len())
}

// Identity: take(V, [0..N)) returns V's values unchanged.
func TestTakeIdentity(t *testing.T) {
	values := array.NewPrimitive([]float64{1.5, 2.5, 3.5}, nil, 0)
	indices := array.NewPrimitive([]int32{0, 1, 2}, nil, 0)
	got, err := kernels.Take(values, indices)
	require.NoError(t, err)

	result := got.(*array.Primitive[float64])
	for i := 0; i < values.Len(); i++ {
		assert.Equal(t, values.Value(i), result.Value(i))
	}
}

// Bounds error names the offending index and the values array's length.
func TestTakeBoundsErrorMessage(t *testing.T) {
	values := array.NewPrimitive([]int32{1, 2, 3}, nil, 0)
	indices := array.NewPrimitive([]int32{5}, nil, 0)

	_, err := kernels.Take(values, indices, kernels.WithCheckBounds(true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 5")
	assert.Contains(t, err.Error(), "3 entries")
}
