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

package dynlink_test

import (
	"sync"

	"github.com/dynlink-go/dynlink"
)

// fakeLibrary is a library the fakeLoader can open, a table of symbol
// addresses by name.
type fakeLibrary map[string]uintptr

// fakeLoader serves fakeLibrary values and counts how often each one is
// opened and closed.
type fakeLoader struct {
	mu      sync.Mutex
	libs    map[string]fakeLibrary
	handles map[uintptr]string
	next    uintptr
	opens   map[string]int
	closes  map[string]int
}

var _ dynlink.Loader = (*fakeLoader)(nil)

func newFakeLoader(libs map[string]fakeLibrary) *fakeLoader {
	return &fakeLoader{
		libs:    libs,
		handles: make(map[uintptr]string),
		next:    0x1000,
		opens:   make(map[string]int),
		closes:  make(map[string]int),
	}
}

func (l *fakeLoader) Open(path string, _ dynlink.Flags) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if path == "" {
		return 0, dynlink.NewUnknownError()
	}
	if _, ok := l.libs[path]; !ok {
		return 0, dynlink.NewSystemError(path+": cannot open shared object file", 0)
	}
	l.next += 0x10
	l.handles[l.next] = path
	l.opens[path]++
	return l.next, nil
}

func (l *fakeLoader) Lookup(lib uintptr, name string) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	path, ok := l.handles[lib]
	if !ok {
		return 0, dynlink.NewUnknownError()
	}
	addr, ok := l.libs[path][name]
	if !ok {
		return 0, dynlink.NewSystemError(path+": undefined symbol: "+name, 0)
	}
	return addr, nil
}

func (l *fakeLoader) Close(lib uintptr) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	path, ok := l.handles[lib]
	if !ok {
		return dynlink.NewUnknownError()
	}
	delete(l.handles, lib)
	l.closes[path]++
	return nil
}

func (l *fakeLoader) counts(path string) (opens, closes int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.opens[path], l.closes[path]
}

func (l *fakeLoader) live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.handles)
}

const (
	libFake    = "libfake.so"
	libMissing = "libmissing.so"

	symbolData    = "fake_data"
	symbolZero    = "fake_zero"
	symbolUnknown = "unknown"
)

func fakeLibs() map[string]fakeLibrary {
	return map[string]fakeLibrary{
		libFake: {
			symbolData: 0xdead0,
			symbolZero: 0,
		},
	}
}
