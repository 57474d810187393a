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

import "github.com/go-kit/log"

// Option configures a ColumnReader using the functional-options
// pattern.
type Option func(*config)

type config struct {
	logger log.Logger
}

func newConfig(opts []Option) *config {
	c := &config{logger: log.NewNopLogger()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithLogger attaches a structured logger. The column reader logs page
// admission (kind, num_values) and batch completion at debug level;
// logging never changes control flow or return values.
func WithLogger(l log.Logger) Option {
	return func(c *config) { c.logger = l }
}
