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

// Package cif calls resolved symbols through a libffi call interface, for
// signatures that a Go func type cannot describe, such as struct arguments
// or variadic C functions.
//
// libffi must be installed; github.com/jupiterrider/ffi loads it at
// program start.
package cif

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/jupiterrider/ffi"

	"github.com/dynlink-go/dynlink"
)

// Signature describes a C function. A nil Return means void.
type Signature struct {
	Return *ffi.Type
	Args   []*ffi.Type
}

// Func is a symbol bound to a prepared call interface.
type Func struct {
	name string
	sym  dynlink.Symbol[uintptr]
	cif  ffi.Cif
}

// ErrNilSymbol is returned by Bind for a symbol whose address is zero.
var ErrNilSymbol = errors.New("cif: symbol address is zero")

// Bind resolves name in t and prepares a call interface for sig.
func Bind(t dynlink.Table, name string, sig Signature) (*Func, error) {
	rType := sig.Return
	if rType == nil {
		rType = &ffi.TypeVoid
	}
	f := &Func{name: name}
	if status := ffi.PrepCif(
		&f.cif,
		ffi.DefaultAbi,
		uint32(len(sig.Args)),
		rType,
		sig.Args...,
	); status != ffi.OK {
		return nil, fmt.Errorf("cif: prepare %s: %s", name, status.String())
	}
	sym, err := dynlink.Lookup[uintptr](t, name)
	if err != nil {
		return nil, err
	}
	if sym.LeakAsRaw() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNilSymbol, name)
	}
	f.sym = sym
	return f, nil
}

// Call invokes the function. rValue points at storage for the result, at
// least pointer sized for integer returns; aValues point at each argument.
// It fails with dynlink.ErrClosed once the owning table is closed.
func (f *Func) Call(rValue unsafe.Pointer, aValues ...unsafe.Pointer) error {
	_, err := dynlink.Apply(f.sym, func(fn uintptr) struct{} {
		ffi.Call(&f.cif, fn, rValue, aValues...)
		return struct{}{}
	})
	return err
}

func (f *Func) String() string {
	return fmt.Sprintf("cif.Func(%s %#x)", f.name, f.sym.LeakAsRaw())
}
