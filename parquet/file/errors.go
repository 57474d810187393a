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
	"fmt"

	"golang.org/x/xerrors"
)

// Kind classifies a column reader error ("Format", "Decoder").
type Kind int

const (
	KindFormat Kind = iota
	KindDecoder
)

func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindDecoder:
		return "decoder"
	default:
		return "unknown"
	}
}

// Error wraps a column reader failure as an xerrors-chained error so
// callers can unwrap the underlying cause.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("parquet/file: %s", e.err)
	}
	return fmt.Sprintf("parquet/file: %s", e.msg)
}

func (e *Error) Unwrap() error { return e.err }

func errInconsistentLevels(numDef, numRep int) error {
	return &Error{Kind: KindDecoder, err: xerrors.Errorf(
		"inconsistent number of levels read, def=%d rep=%d", numDef, numRep)}
}

func errInsufficientValues(want, got int) error {
	return &Error{Kind: KindDecoder, err: xerrors.Errorf(
		"insufficient values read from column, expected %d got %d", want, got)}
}

func errInvalidLevelEncoding(enc fmt.Stringer) error {
	return &Error{Kind: KindFormat, err: xerrors.Errorf("invalid level encoding: %s", enc)}
}

func errMoreNullsThanValues(numNulls, numValues int) error {
	return &Error{Kind: KindFormat, err: xerrors.Errorf(
		"more nulls than values in page, num_nulls=%d num_values=%d", numNulls, numValues)}
}
