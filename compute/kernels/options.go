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

import "github.com/go-kit/log"

// Option configures Take using the functional-options pattern.
type Option func(*config)

type config struct {
	checkBounds bool
	logger      log.Logger
}

func newConfig(opts []Option) *config {
	c := &config{logger: log.NewNopLogger()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithCheckBounds toggles bounds checking on indices. Off by default:
// an out-of-range index is then undefined behavior and may panic.
func WithCheckBounds(v bool) Option {
	return func(c *config) { c.checkBounds = v }
}

// WithLogger attaches a structured logger. Take logs only at debug
// level, once per list gather as it recurses into the child array; no
// other gather routine logs.
func WithLogger(l log.Logger) Option {
	return func(c *config) { c.logger = l }
}
