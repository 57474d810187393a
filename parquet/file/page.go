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

// Package file implements a pull-based column chunk page reader and
// the capability-set decoder contracts it drives. Decoding RLE/
// bit-packed levels or PLAIN/dictionary values is explicitly out of
// scope; only the interfaces those decoders must satisfy live here.
package file

import "github.com/colkit/columnio/parquet"

// PageKind tags the three page variants a column chunk can contain.
type PageKind int

const (
	DictionaryPageKind PageKind = iota
	DataPageV1Kind
	DataPageV2Kind
)

// Page is the sum type a PageReader yields; callers switch on Kind()
// and then the concrete Go type.
type Page interface {
	Kind() PageKind
	NumValues() int
}

// DictionaryPage carries an entire dictionary's encoded values.
type DictionaryPage struct {
	Data     []byte
	Values   int
	Encoding parquet.Encoding
	IsSorted bool
}

func (DictionaryPage) Kind() PageKind  { return DictionaryPageKind }
func (p DictionaryPage) NumValues() int { return p.Values }

// DataPageV1 is a data page whose levels, if any, are embedded in Data
// with their own framing - see parseV1Level in column_reader.go.
type DataPageV1 struct {
	Data            []byte
	Values          int
	Encoding        parquet.Encoding
	DefLevelEncoding parquet.Encoding
	RepLevelEncoding parquet.Encoding
}

func (DataPageV1) Kind() PageKind  { return DataPageV1Kind }
func (p DataPageV1) NumValues() int { return p.Values }

// DataPageV2 is a data page with explicit, uncompressed level byte
// lengths and levels always RLE-encoded.
type DataPageV2 struct {
	Data            []byte
	Values          int
	NumNulls        int
	NumRows         int
	Encoding        parquet.Encoding
	RepLevelsByteLen int
	DefLevelsByteLen int
	IsCompressed    bool
}

func (DataPageV2) Kind() PageKind  { return DataPageV2Kind }
func (p DataPageV2) NumValues() int { return p.Values }

// PageReader is the pluggable page source: pages appear in physical
// order, and a dictionary page, if present, precedes all data pages
// referring to it. Next returns io.EOF once the stream is exhausted,
// the idiomatic Go rendering of a nullable-page return (see
// DESIGN.md).
type PageReader interface {
	Next() (Page, error)
}
