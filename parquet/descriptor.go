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

package parquet

import "strings"

// ColumnPath is the dotted path of a column within its schema, carried
// purely as a diagnostic label for error messages and logging - this
// package never parses a schema, so a path is just what the caller
// says it is.
type ColumnPath []string

func (p ColumnPath) String() string { return strings.Join(p, ".") }

// ColumnDescriptor is the caller-supplied shape of one column chunk's
// pages: its physical type and the maximum definition/repetition
// levels a DataPage v1's level segments are framed against. Nothing in
// this module parses one out of a file footer - constructing it is the
// caller's job.
type ColumnDescriptor struct {
	Name                 string
	Path                 ColumnPath
	PhysicalType         Type
	TypeLength           int // byte width, only meaningful for FixedLenByteArray
	MaxDefinitionLevel   int16
	MaxRepetitionLevel   int16
}

// NewColumnDescriptor builds a descriptor with the given shape.
func NewColumnDescriptor(name string, path ColumnPath, physicalType Type, maxDefLevel, maxRepLevel int16) *ColumnDescriptor {
	return &ColumnDescriptor{
		Name:               name,
		Path:               path,
		PhysicalType:       physicalType,
		MaxDefinitionLevel: maxDefLevel,
		MaxRepetitionLevel: maxRepLevel,
	}
}
