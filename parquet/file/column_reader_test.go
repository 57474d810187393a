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

package file_test

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colkit/columnio/parquet"
	"github.com/colkit/columnio/parquet/file"
)

// fakeLevelDecoder hands out a fixed sequence of levels already decoded
// in memory, standing in for a real RLE/BIT_PACKED decoder.
type fakeLevelDecoder struct {
	levels []int16
	pos    int
}

func (d *fakeLevelDecoder) Read(out []int16) int {
	n := copy(out, d.levels[d.pos:])
	d.pos += n
	return n
}

func (d *fakeLevelDecoder) CountNulls(n int, maxLevel int16) int {
	count := 0
	for i := 0; i < n; i++ {
		if d.levels[d.pos-n+i] < maxLevel {
			count++
		}
	}
	return count
}

func newFakeLevelDecoder(maxLevel int16, enc parquet.Encoding, data []byte) (*fakeLevelDecoder, error) {
	levels := make([]int16, len(data))
	for i, b := range data {
		levels[i] = int16(b)
	}
	return &fakeLevelDecoder{levels: levels}, nil
}

// fakeValueDecoder decodes int32 values out of a byte slice where each
// value occupies one byte, enough to exercise ColumnReader's value
// bookkeeping without needing a real PLAIN decoder.
type fakeValueDecoder struct {
	data []byte
	pos  int
}

func (v *fakeValueDecoder) SetDict(buf []byte, numValues int, enc parquet.Encoding, isSorted bool) {}

func (v *fakeValueDecoder) SetData(enc parquet.Encoding, data []byte, numValues int, numNonNull *int) {
	v.data = data
	v.pos = 0
}

func (v *fakeValueDecoder) Read(out file.ValuesBufferSlice, rangeLen int) int {
	dst := out.([]int32)
	n := rangeLen
	if n > len(v.data)-v.pos {
		n = len(v.data) - v.pos
	}
	for i := 0; i < n; i++ {
		dst[i] = int32(v.data[v.pos+i])
	}
	v.pos += n
	return n
}

// fakePageReader replays a fixed slice of pages, then io.EOF.
type fakePageReader struct {
	pages []file.Page
	pos   int
}

func (r *fakePageReader) Next() (file.Page, error) {
	if r.pos >= len(r.pages) {
		return nil, io.EOF
	}
	p := r.pages[r.pos]
	r.pos++
	return p, nil
}

// Scenario 6: max_def_level=1, max_rep_level=0, two data pages of 128
// levels each (definition level 1 = present, 0 = null), values present
// wherever def level is 1. read_batch(17) repeated to exhaustion must
// yield exactly 256 levels total and as many values as non-null levels.
func TestColumnReaderScenario6(t *testing.T) {
	descr := parquet.NewColumnDescriptor("x", parquet.ColumnPath{"x"}, parquet.Int32, 1, 0)

	// Build two pages manually: def-level bytes (RLE-framed: 4-byte
	// length prefix + raw bytes) followed by one value byte per
	// non-null def level.
	buildPage := func(nullEvery int) (file.DataPageV1, []int16, []int32) {
		defs := make([]byte, 128)
		expectedDefs := make([]int16, 128)
		var vals []byte
		var expectedVals []int32
		v := byte(0)
		for i := range defs {
			if i%nullEvery == nullEvery-1 {
				defs[i] = 0
			} else {
				defs[i] = 1
				vals = append(vals, v)
				expectedVals = append(expectedVals, int32(v))
				v++
			}
			expectedDefs[i] = int16(defs[i])
		}
		framed := make([]byte, 4+len(defs))
		framed[0] = byte(len(defs))
		copy(framed[4:], defs)
		data := append(framed, vals...)
		return file.DataPageV1{
			Data:             data,
			Values:           128,
			Encoding:         parquet.Plain,
			DefLevelEncoding: parquet.RLE,
		}, expectedDefs, expectedVals
	}

	page1, expectedDefs1, expectedVals1 := buildPage(4)
	page2, expectedDefs2, expectedVals2 := buildPage(8)
	wantDefs := append(append([]int16{}, expectedDefs1...), expectedDefs2...)
	wantValues := append(append([]int32{}, expectedVals1...), expectedVals2...)

	pr := &fakePageReader{pages: []file.Page{page1, page2}}

	cr := file.NewColumnReader[*fakeLevelDecoder, *fakeLevelDecoder, *fakeValueDecoder](
		descr, pr, newFakeLevelDecoder, newFakeLevelDecoder, &fakeValueDecoder{},
	)

	var gotDefs []int16
	var gotValues []int32
	totalLevels, totalValues := 0, 0
	nullCount := 0
	for {
		defLevels := make([]int16, 17)
		values := make([]int32, 17)
		valuesRead, levelsRead, err := cr.ReadBatch(17, defLevels, nil, values, 17)
		require.NoError(t, err)
		if levelsRead == 0 && valuesRead == 0 {
			break
		}
		for i := 0; i < levelsRead; i++ {
			if defLevels[i] < descr.MaxDefinitionLevel {
				nullCount++
			}
		}
		gotDefs = append(gotDefs, defLevels[:levelsRead]...)
		gotValues = append(gotValues, values[:valuesRead]...)
		totalLevels += levelsRead
		totalValues += valuesRead
	}

	assert.Equal(t, 256, totalLevels)
	assert.Equal(t, 256-nullCount, totalValues)
	assert.Equal(t, totalValues, 256-nullCount)
	if diff := cmp.Diff(wantDefs, gotDefs); diff != "" {
		t.Errorf("decoded definition levels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantValues, gotValues); diff != "" {
		t.Errorf("decoded values mismatch (-want +got):\n%s", diff)
	}
}

// read_batch never returns more levels or values than requested.
func TestColumnReaderReadBatchConservation(t *testing.T) {
	descr := parquet.NewColumnDescriptor("x", parquet.ColumnPath{"x"}, parquet.Int32, 1, 0)

	defs := make([]byte, 10)
	for i := range defs {
		defs[i] = 1
	}
	framed := make([]byte, 4+len(defs))
	framed[0] = byte(len(defs))
	copy(framed[4:], defs)
	vals := make([]byte, 10)
	data := append(framed, vals...)

	pr := &fakePageReader{pages: []file.Page{file.DataPageV1{
		Data: data, Values: 10, Encoding: parquet.Plain, DefLevelEncoding: parquet.RLE,
	}}}
	cr := file.NewColumnReader[*fakeLevelDecoder, *fakeLevelDecoder, *fakeValueDecoder](
		descr, pr, newFakeLevelDecoder, newFakeLevelDecoder, &fakeValueDecoder{},
	)

	defLevels := make([]int16, 4)
	values := make([]int32, 4)
	valuesRead, levelsRead, err := cr.ReadBatch(4, defLevels, nil, values, 4)
	require.NoError(t, err)
	assert.LessOrEqual(t, levelsRead, 4)
	assert.LessOrEqual(t, valuesRead, 4)
}

// Whenever a definition level decoder is present, the number of
// values decoded in a step equals the number of non-null levels.
func TestColumnReaderLevelValueCoherence(t *testing.T) {
	descr := parquet.NewColumnDescriptor("x", parquet.ColumnPath{"x"}, parquet.Int32, 1, 0)

	defs := []byte{1, 0, 1, 0, 1}
	framed := make([]byte, 4+len(defs))
	framed[0] = byte(len(defs))
	copy(framed[4:], defs)
	vals := []byte{9, 9, 9}
	data := append(framed, vals...)

	pr := &fakePageReader{pages: []file.Page{file.DataPageV1{
		Data: data, Values: 5, Encoding: parquet.Plain, DefLevelEncoding: parquet.RLE,
	}}}
	cr := file.NewColumnReader[*fakeLevelDecoder, *fakeLevelDecoder, *fakeValueDecoder](
		descr, pr, newFakeLevelDecoder, newFakeLevelDecoder, &fakeValueDecoder{},
	)

	defLevels := make([]int16, 5)
	values := make([]int32, 5)
	valuesRead, levelsRead, err := cr.ReadBatch(5, defLevels, nil, values, 5)
	require.NoError(t, err)
	require.Equal(t, 5, levelsRead)

	nonNull := 0
	for i := 0; i < levelsRead; i++ {
		if defLevels[i] == descr.MaxDefinitionLevel {
			nonNull++
		}
	}
	assert.Equal(t, nonNull, valuesRead)
}

func TestColumnReaderMoreNullsThanValuesRejected(t *testing.T) {
	descr := parquet.NewColumnDescriptor("x", parquet.ColumnPath{"x"}, parquet.Int32, 1, 1)
	pr := &fakePageReader{pages: []file.Page{file.DataPageV2{
		Data: nil, Values: 4, NumNulls: 5,
	}}}
	cr := file.NewColumnReader[*fakeLevelDecoder, *fakeLevelDecoder, *fakeValueDecoder](
		descr, pr, newFakeLevelDecoder, newFakeLevelDecoder, &fakeValueDecoder{},
	)

	defLevels := make([]int16, 4)
	repLevels := make([]int16, 4)
	values := make([]int32, 4)
	_, _, err := cr.ReadBatch(4, defLevels, repLevels, values, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more nulls than values")
}
