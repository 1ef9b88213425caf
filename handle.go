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

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dynlink-go/dynlink/internal/cstr"
)

// Handle owns one loaded library. The library stays mapped until Close,
// which releases it exactly once. A Handle that becomes unreachable without
// being closed is closed by a finalizer; symbols keep their Handle
// reachable, leaked values do not.
type Handle struct {
	id     uuid.UUID
	path   string
	loader Loader
	log    *slog.Logger

	mu     sync.RWMutex
	lib    uintptr
	closed atomic.Bool
}

var _ Table = (*Handle)(nil)

// Open loads the library at path, a file path or a name for the platform's
// search rules to resolve. A NUL byte in path ends it early.
//
// The library's initializers run before Open returns. On failure the error
// is a *LinkingError, KindUnknown when the platform gave no diagnostic.
func Open(path string, opts ...Option) (*Handle, error) {
	o := newOptions(opts)
	return open(path, o)
}

// OpenFirst opens the first of names that loads. When none do it returns
// the error for the last one.
func OpenFirst(names []string, opts ...Option) (*Handle, error) {
	o := newOptions(opts)
	err := fmt.Errorf("%w: no names given", ErrNotFound)
	for _, name := range names {
		var h *Handle
		h, err = open(name, o)
		if err == nil {
			return h, nil
		}
	}
	return nil, err
}

func open(path string, o options) (*Handle, error) {
	path = cstr.Trim(path)
	lib, err := o.loader.Open(path, o.flags)
	if err != nil {
		o.logger.Debug("dynlink: open failed", "path", path, "err", err)
		return nil, normalize(err)
	}
	h := &Handle{
		id:     uuid.New(),
		path:   path,
		loader: o.loader,
		log:    o.logger,
		lib:    lib,
	}
	runtime.SetFinalizer(h, (*Handle).Close)
	h.log.Debug("dynlink: library opened", "handle", h)
	return h, nil
}

// Path returns the path the library was opened with.
func (h *Handle) Path() string {
	return h.path
}

// Resolve returns the untyped address of the named symbol. A NUL byte in
// name ends it early. Use the Lookup functions for a typed Symbol.
//
// A zero address is returned without error where the platform reports
// the symbol as existing with value zero.
func (h *Handle) Resolve(name string) (uintptr, error) {
	name = cstr.Trim(name)

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed.Load() {
		return 0, ErrClosed
	}
	addr, err := h.loader.Lookup(h.lib, name)
	if err != nil {
		h.log.Debug("dynlink: lookup failed", "handle", h, "name", name, "err", err)
		return 0, normalize(err)
	}
	return addr, nil
}

// Acquire holds the library open until release is called; Close waits for
// it. It fails with ErrClosed once the handle is closed. Calling Close or
// Resolve on h before releasing can deadlock against a waiting Close.
func (h *Handle) Acquire() (release func(), err error) {
	h.mu.RLock()
	if h.closed.Load() {
		h.mu.RUnlock()
		return nil, ErrClosed
	}
	return h.mu.RUnlock, nil
}

// Closed reports whether Close has been called.
func (h *Handle) Closed() bool {
	return h.closed.Load()
}

// Close releases the library. It waits for lookups in progress and for
// calls made through Apply; only the first call reaches the platform and
// later calls return nil.
//
// Values leaked from the handle's symbols must not be used afterwards.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed.Load() {
		return nil
	}
	h.closed.Store(true)
	runtime.SetFinalizer(h, nil)

	err := normalize(h.loader.Close(h.lib))
	if err != nil {
		h.log.Debug("dynlink: close failed", "handle", h, "err", err)
		return err
	}
	h.log.Debug("dynlink: library closed", "handle", h)
	return nil
}

func (h *Handle) String() string {
	return fmt.Sprintf("Handle(%s %q)", h.id, h.path)
}

func (h *Handle) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", h.id.String()),
		slog.String("path", h.path),
	)
}
