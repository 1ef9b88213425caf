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

//go:build libffi

package cif_test

import (
	"errors"
	"sync"
	"testing"
	"unsafe"

	"github.com/jupiterrider/ffi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynlink-go/dynlink"
	"github.com/dynlink-go/dynlink/cif"
)

// table is a dynlink.Table over a fixed set of addresses.
type table struct {
	mu     sync.RWMutex
	syms   map[string]uintptr
	closed bool
}

var errUndefined = errors.New("undefined symbol")

func (t *table) Resolve(name string) (uintptr, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		return 0, dynlink.ErrClosed
	}
	addr, ok := t.syms[name]
	if !ok {
		return 0, errUndefined
	}
	return addr, nil
}

func (t *table) Acquire() (func(), error) {
	t.mu.RLock()
	if t.closed {
		t.mu.RUnlock()
		return nil, dynlink.ErrClosed
	}
	return t.mu.RUnlock, nil
}

func (t *table) Closed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.closed
}

func (t *table) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
}

var voidSig = cif.Signature{Args: []*ffi.Type{&ffi.TypeSint32}}

func TestBindUnknownSymbolFromTable(t *testing.T) {
	_, err := cif.Bind(&table{}, "missing", voidSig)
	assert.ErrorIs(t, err, errUndefined)
}

func TestBindZeroAddress(t *testing.T) {
	tbl := &table{syms: map[string]uintptr{"weak": 0}}

	_, err := cif.Bind(tbl, "weak", voidSig)
	assert.ErrorIs(t, err, cif.ErrNilSymbol)
}

func TestBindClosedTable(t *testing.T) {
	tbl := &table{syms: map[string]uintptr{"f": 0x1000}}
	tbl.Close()

	_, err := cif.Bind(tbl, "f", voidSig)
	assert.ErrorIs(t, err, dynlink.ErrClosed)
}

func TestCallClosedTable(t *testing.T) {
	tbl := &table{syms: map[string]uintptr{"f": 0x1000}}

	f, err := cif.Bind(tbl, "f", voidSig)
	require.NoError(t, err)
	assert.Contains(t, f.String(), "0x1000")

	// Closing first means the bogus address is never called.
	tbl.Close()
	arg := int32(1)
	assert.ErrorIs(t, f.Call(nil, unsafe.Pointer(&arg)), dynlink.ErrClosed)
}
