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

import (
	"encoding/binary"
	"io"
	"reflect"

	"github.com/JohnCGriffin/overflow"
	"github.com/go-kit/log/level"
	"golang.org/x/xerrors"

	"github.com/colkit/columnio/arrow/bitutil"
	"github.com/colkit/columnio/parquet"
)

// ColumnReader is the pull-based column chunk page reader: the caller
// supplies destination buffers and ReadBatch decodes into them, pulling
// fresh pages from pr as needed. It never branches on the concrete type
// of its level or value decoders - R, D and V are capability-set type
// parameters, not an interface{} the reader type-asserts, so it never
// needs a runtime type switch to reach a decoder's methods.
type ColumnReader[R, D LevelDecoder, V ValueDecoder] struct {
	descr *parquet.ColumnDescriptor
	pr    PageReader
	cfg   *config

	newRepDecoder NewLevelDecoderFunc[R]
	newDefDecoder NewLevelDecoderFunc[D]
	values        V

	repLevelDecoder   R
	defLevelDecoder   D
	hasRepDecoder     bool
	hasDefDecoder     bool

	numBufferedValues int
	numDecodedValues  int
}

// NewColumnReader builds a ColumnReader over pr. newRepDecoder and
// newDefDecoder are invoked once per admitted DataPage to build a fresh
// decoder bound to that page's level bytes; values is reused across
// pages via SetDict/SetData.
func NewColumnReader[R, D LevelDecoder, V ValueDecoder](
	descr *parquet.ColumnDescriptor,
	pr PageReader,
	newRepDecoder NewLevelDecoderFunc[R],
	newDefDecoder NewLevelDecoderFunc[D],
	values V,
	opts ...Option,
) *ColumnReader[R, D, V] {
	return &ColumnReader[R, D, V]{
		descr:         descr,
		pr:            pr,
		cfg:           newConfig(opts),
		newRepDecoder: newRepDecoder,
		newDefDecoder: newDefDecoder,
		values:        values,
	}
}

// ReadBatch decodes up to batchSize levels/values into the caller's
// buffers, looping over pages until batchSize is reached or the column
// chunk is exhausted, and returns the number of values and levels
// actually produced.
func (c *ColumnReader[R, D, V]) ReadBatch(batchSize int, defLevels, repLevels []int16, values ValuesBufferSlice, valuesCap int) (valuesRead, levelsRead int, err error) {
	cap := batchSize
	if cap > valuesCap {
		cap = valuesCap
	}
	if defLevels != nil && len(defLevels) < cap {
		cap = len(defLevels)
	}
	if repLevels != nil && len(repLevels) < cap {
		cap = len(repLevels)
	}

	for maxInt(valuesRead, levelsRead) < cap {
		hasNext, herr := c.hasNext()
		if herr != nil {
			return valuesRead, levelsRead, herr
		}
		if !hasNext {
			break
		}

		iter := minInt(cap-valuesRead, cap-levelsRead)
		iter = minInt(iter, c.numBufferedValues-c.numDecodedValues)

		numDefLevels, nullCount := 0, 0
		if c.hasDefDecoder && c.descr.MaxDefinitionLevel > 0 && defLevels != nil {
			numDefLevels = c.defLevelDecoder.Read(defLevels[levelsRead : levelsRead+iter])
			nullCount = c.defLevelDecoder.CountNulls(numDefLevels, c.descr.MaxDefinitionLevel)
		}

		numRepLevels := 0
		if c.hasRepDecoder && c.descr.MaxRepetitionLevel > 0 && repLevels != nil {
			numRepLevels = c.repLevelDecoder.Read(repLevels[levelsRead : levelsRead+iter])
		}

		if numDefLevels != 0 && numRepLevels != 0 && numDefLevels != numRepLevels {
			return valuesRead, levelsRead, errInconsistentLevels(numDefLevels, numRepLevels)
		}

		valuesToRead := iter - nullCount
		// Hand the decoder the caller's buffer starting at the first slot
		// not yet filled by an earlier iteration of this batch.
		out := values
		if valuesRead > 0 {
			rv := reflect.ValueOf(values)
			out = rv.Slice(valuesRead, rv.Len()).Interface()
		}
		currValuesRead := c.values.Read(out, valuesToRead)

		if numDefLevels != 0 && currValuesRead != numDefLevels-nullCount {
			return valuesRead, levelsRead, errInsufficientValues(numDefLevels-nullCount, currValuesRead)
		}

		currLevelsRead := maxInt(numDefLevels, numRepLevels)
		advance, ok := overflow.Add(c.numDecodedValues, maxInt(currLevelsRead, currValuesRead))
		if !ok {
			return valuesRead, levelsRead, xerrors.New("parquet/file: decoded value count overflow")
		}
		c.numDecodedValues = advance
		levelsRead += currLevelsRead
		valuesRead += currValuesRead
	}

	level.Debug(c.cfg.logger).Log("msg", "read_batch complete", "values_read", valuesRead, "levels_read", levelsRead)
	return valuesRead, levelsRead, nil
}

// hasNext loops readNewPage until either the stream is exhausted or a
// non-empty page is current - a just-admitted page with zero buffered
// values never satisfies the batch on its own.
func (c *ColumnReader[R, D, V]) hasNext() (bool, error) {
	for c.numBufferedValues == 0 || c.numBufferedValues == c.numDecodedValues {
		ok, err := c.readNewPage()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if c.numBufferedValues != 0 {
			return true, nil
		}
	}
	return true, nil
}

// readNewPage pulls pages from pr, silently admitting any dictionary
// page it sees before returning on the next data page (or io.EOF).
func (c *ColumnReader[R, D, V]) readNewPage() (bool, error) {
	for {
		page, err := c.pr.Next()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}

		switch p := page.(type) {
		case DictionaryPage:
			c.values.SetDict(p.Data, p.Values, p.Encoding, p.IsSorted)
			level.Debug(c.cfg.logger).Log("msg", "admitted dictionary page", "num_values", p.Values)
			continue

		case DataPageV1:
			c.numBufferedValues = p.Values
			c.numDecodedValues = 0

			offset := 0
			if c.descr.MaxRepetitionLevel > 0 {
				n, data, err := parseV1Level(c.descr.MaxRepetitionLevel, p.Values, p.RepLevelEncoding, p.Data[offset:])
				if err != nil {
					return false, err
				}
				offset += n
				dec, err := c.newRepDecoder(c.descr.MaxRepetitionLevel, p.RepLevelEncoding, data)
				if err != nil {
					return false, err
				}
				c.repLevelDecoder, c.hasRepDecoder = dec, true
			}
			if c.descr.MaxDefinitionLevel > 0 {
				n, data, err := parseV1Level(c.descr.MaxDefinitionLevel, p.Values, p.DefLevelEncoding, p.Data[offset:])
				if err != nil {
					return false, err
				}
				offset += n
				dec, err := c.newDefDecoder(c.descr.MaxDefinitionLevel, p.DefLevelEncoding, data)
				if err != nil {
					return false, err
				}
				c.defLevelDecoder, c.hasDefDecoder = dec, true
			}
			c.values.SetData(p.Encoding, p.Data[offset:], p.Values, nil)
			level.Debug(c.cfg.logger).Log("msg", "admitted data page v1", "num_values", p.Values)
			return true, nil

		case DataPageV2:
			if p.NumNulls > p.Values {
				return false, errMoreNullsThanValues(p.NumNulls, p.Values)
			}
			c.numBufferedValues = p.Values
			c.numDecodedValues = 0

			if c.descr.MaxRepetitionLevel > 0 {
				dec, err := c.newRepDecoder(c.descr.MaxRepetitionLevel, parquet.RLE, p.Data[:p.RepLevelsByteLen])
				if err != nil {
					return false, err
				}
				c.repLevelDecoder, c.hasRepDecoder = dec, true
			}
			if c.descr.MaxDefinitionLevel > 0 {
				dec, err := c.newDefDecoder(c.descr.MaxDefinitionLevel, parquet.RLE, p.Data[p.RepLevelsByteLen:p.RepLevelsByteLen+p.DefLevelsByteLen])
				if err != nil {
					return false, err
				}
				c.defLevelDecoder, c.hasDefDecoder = dec, true
			}
			numNonNull := p.Values - p.NumNulls
			c.values.SetData(p.Encoding, p.Data[p.RepLevelsByteLen+p.DefLevelsByteLen:], p.Values, &numNonNull)
			level.Debug(c.cfg.logger).Log("msg", "admitted data page v2", "num_values", p.Values, "num_nulls", p.NumNulls)
			return true, nil

		default:
			return false, xerrors.Errorf("parquet/file: unrecognised page kind %T", page)
		}
	}
}

// parseV1Level splits a DataPage v1's level segment off the front of
// buf: RLE is prefixed by a 4-byte little-endian length, BIT_PACKED's
// size is derived from level count and required bit width.
func parseV1Level(maxLevel int16, numValues int, enc parquet.Encoding, buf []byte) (consumed int, data []byte, err error) {
	switch enc {
	case parquet.RLE:
		if len(buf) < 4 {
			return 0, nil, xerrors.Errorf("parquet/file: level segment shorter than its length prefix")
		}
		size := int(binary.LittleEndian.Uint32(buf[:4]))
		return 4 + size, buf[4 : 4+size], nil
	case parquet.BitPacked:
		bits := numRequiredBits(maxLevel)
		n := int(bitutil.CeilDiv(int64(numValues*bits), 8))
		return n, buf[:n], nil
	default:
		return 0, nil, errInvalidLevelEncoding(enc)
	}
}

// numRequiredBits returns the number of bits needed to represent any
// value in [0, maxLevel].
func numRequiredBits(maxLevel int16) int {
	bits := 0
	for v := maxLevel; v != 0; v >>= 1 {
		bits++
	}
	return bits
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
