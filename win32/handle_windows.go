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

//go:build windows

package win32

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ErrClosed is returned by Resolve on a closed Handle.
var ErrClosed = errors.New("win32: handle is closed")

// Handle owns one LoadLibraryExW reference. The module stays mapped until
// Close.
type Handle struct {
	mu     sync.RWMutex
	lib    uintptr
	closed bool
}

// Open maps the library at path using the standard search order.
//
// Opening a library runs its DllMain, which is arbitrary code.
func Open(path string) (*Handle, error) {
	return OpenW(FromString(path), DefaultFlags)
}

// OpenFlags maps the library at path with the given LOAD_* flags.
func OpenFlags(path string, flags LoadFlags) (*Handle, error) {
	return OpenW(FromString(path), flags)
}

// OpenW maps the library at the UTF-16 path with the given LOAD_* flags.
func OpenW(path WCStr, flags LoadFlags) (*Handle, error) {
	lib, err := LoadLibraryEx(path, flags)
	if err != nil {
		return nil, err
	}
	h := &Handle{lib: lib}
	runtime.SetFinalizer(h, (*Handle).Close)
	return h, nil
}

// Resolve returns the address of the named export.
func (h *Handle) Resolve(name string) (uintptr, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return 0, ErrClosed
	}
	return GetProcAddress(h.lib, name)
}

// Acquire holds the library open until release is called; Close waits for
// it. It fails with ErrClosed once h is closed.
func (h *Handle) Acquire() (release func(), err error) {
	h.mu.RLock()
	if h.closed {
		h.mu.RUnlock()
		return nil, ErrClosed
	}
	return h.mu.RUnlock, nil
}

// Closed reports whether Close has been called.
func (h *Handle) Closed() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.closed
}

// Close releases the module. Only the first call reaches FreeLibrary.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	runtime.SetFinalizer(h, nil)
	return FreeLibrary(h.lib)
}

func (h *Handle) String() string {
	return fmt.Sprintf("Win32Handle(%#x)", h.lib)
}
