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

// Command columnio runs the Take gather kernel over JSON-encoded int64
// arrays, mostly as a runnable demonstration of compute/kernels.Take
// against the rest of the ambient stack (configuration, logging, JSON
// codec).
package main

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	gojson "github.com/goccy/go-json"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/colkit/columnio/arrow/array"
	"github.com/colkit/columnio/arrow/bitutil"
	"github.com/colkit/columnio/compute/kernels"
)

const usage = `columnio take

Usage:
  columnio take --values=<file> --indices=<file> [--check-bounds] [--verbose]
  columnio -h | --help

Gathers values[indices[k]] for every k, reading both arrays as JSON
lists of nullable int64 (null slots encoded as JSON null), and prints
the result to stdout as a JSON list of the same shape.

Options:
  --values=<file>    path to a JSON file holding the values array.
  --indices=<file>   path to a JSON file holding the indices array.
  --check-bounds     validate indices are in range before gathering.
  --verbose          log each step at debug level.
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(argv []string) error {
	opts, err := docopt.ParseArgs(usage, argv, "columnio 0.1.0")
	if err != nil {
		return err
	}

	logger := log.NewLogfmtLogger(os.Stderr)
	if verbose, _ := opts.Bool("--verbose"); !verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	valuesPath, err := opts.String("--values")
	if err != nil {
		return err
	}
	indicesPath, err := opts.String("--indices")
	if err != nil {
		return err
	}

	values, err := readNullableInt64Array(valuesPath)
	if err != nil {
		return fmt.Errorf("reading values: %w", err)
	}
	indices, err := readNullableInt64Array(indicesPath)
	if err != nil {
		return fmt.Errorf("reading indices: %w", err)
	}
	level.Info(logger).Log("msg", "loaded arrays", "num_values", values.Len(), "num_indices", indices.Len())

	checkBounds, _ := opts.Bool("--check-bounds")
	result, err := kernels.Take(values, indices,
		kernels.WithCheckBounds(checkBounds),
		kernels.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("take: %w", err)
	}

	out := toNullableInt64Slice(result.(*array.Primitive[int64]))
	enc := gojson.NewEncoder(os.Stdout)
	return enc.Encode(out)
}

func readNullableInt64Array(path string) (*array.Primitive[int64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raw []*int64
	if err := gojson.NewDecoder(f).Decode(&raw); err != nil {
		return nil, err
	}

	values := make([]int64, len(raw))
	valid := bitutil.NewBitmap(len(raw), true)
	nullN := 0
	for i, v := range raw {
		if v == nil {
			bitutil.ClearBit(valid, i)
			nullN++
			continue
		}
		values[i] = *v
	}
	if nullN == 0 {
		valid = nil
	}
	return array.NewPrimitive(values, valid, nullN), nil
}

func toNullableInt64Slice(p *array.Primitive[int64]) []*int64 {
	out := make([]*int64, p.Len())
	for i := range out {
		if p.IsNull(i) {
			continue
		}
		v := p.Value(i)
		out[i] = &v
	}
	return out
}
