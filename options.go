/*
 * Licensed to the Apache Software Foundation (ASF) under one
 * or more contributor license agreements.  See the NOTICE file
 * distributed with this work for additional information
 * regarding copyright ownership.  The ASF licenses this file
 * to you under the Apache License, Version 2.0 (the
 * "License"); you may not use this file except in compliance
 * with the License.  You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package dynlink

import "log/slog"

// Loader is the system facility a Handle drives. Exactly one
// implementation is built in for each target; WithLoader substitutes
// another, for example a fake that tracks opens and closes.
//
// Errors should be *LinkingError values, or the platform package's own
// linking errors, which Handle normalizes.
type Loader interface {
	Open(path string, flags Flags) (uintptr, error)
	Lookup(lib uintptr, name string) (uintptr, error)
	Close(lib uintptr) error
}

// SystemLoader returns the platform loader Open uses by default.
func SystemLoader() Loader {
	return systemLoader{}
}

// Option configures Open.
type Option func(*options)

type options struct {
	flags  Flags
	loader Loader
	logger *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{
		flags:  defaultFlags,
		loader: systemLoader{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// WithFlags sets the platform load flags. The default on POSIX is
// RTLD_LAZY|RTLD_LOCAL; on Windows it is 0, the standard search order.
func WithFlags(flags Flags) Option {
	return func(o *options) {
		o.flags = flags
	}
}

// WithLoader opens the library through l instead of the system loader.
func WithLoader(l Loader) Option {
	return func(o *options) {
		o.loader = l
	}
}

// WithLogger sets where debug records about the handle's lifetime go.
// The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
