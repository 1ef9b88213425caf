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
	"reflect"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/dynlink-go/dynlink/pointersized"
)

// Table is anything symbols can be resolved from: a Handle, or a
// platform package's handle used directly.
//
// Acquire keeps the table open until release is called. Close waits for
// every outstanding release.
type Table interface {
	Resolve(name string) (uintptr, error)
	Acquire() (release func(), err error)
	Closed() bool
}

// Symbol is a resolved address viewed as a T. It owns nothing: copies are
// cheap and equal, and the address is valid only while the Table it came
// from is open.
type Symbol[T any] struct {
	owner Table
	addr  uintptr
	value T
}

// Lookup resolves name as a data address.
func Lookup[T pointersized.Pointer](t Table, name string) (Symbol[T], error) {
	return lookup[T](t, name)
}

func lookup[T any](t Table, name string) (Symbol[T], error) {
	addr, err := t.Resolve(name)
	if err != nil {
		return Symbol[T]{}, err
	}
	value, err := reinterpret[T](addr)
	if err != nil {
		return Symbol[T]{}, fmt.Errorf("%w: %s", err, name)
	}
	return Symbol[T]{owner: t, addr: addr, value: value}, nil
}

// Apply calls f with the symbol as a T and returns f's result. It fails
// with ErrClosed once the owning table is closed. The table stays open
// until f returns, so f must not close it or use it to resolve again.
//
// T must be ABI compatible with the symbol. If it is not, calling it in f
// is undefined behavior.
func Apply[T, R any](s Symbol[T], f func(T) R) (R, error) {
	var zero R
	if s.owner == nil {
		return zero, ErrClosed
	}
	release, err := s.owner.Acquire()
	if err != nil {
		return zero, err
	}
	defer release()
	return f(s.value), nil
}

// Leak returns the symbol as a bare T, detached from its owner. Using the
// value after the owner is closed is undefined behavior.
func (s Symbol[T]) Leak() T {
	return s.value
}

// LeakAsRaw returns the resolved address, detached from its owner.
func (s Symbol[T]) LeakAsRaw() uintptr {
	return s.addr
}

func (s Symbol[T]) String() string {
	var zero T
	return fmt.Sprintf("Symbol[%T](%#x)", zero, s.addr)
}

// reinterpret builds a T from addr. Address types get the bits as they
// are; function types get a Go function calling addr with the C ABI. A zero
// address leaves a function nil.
func reinterpret[T any](addr uintptr) (v T, err error) {
	typ := reflect.TypeOf(&v).Elem()
	if !pointersized.Is(typ) {
		return v, fmt.Errorf("%w: %s is not pointer sized", ErrUnsupportedSignature, typ)
	}
	if typ.Kind() != reflect.Func {
		*(*uintptr)(unsafe.Pointer(&v)) = addr
		return v, nil
	}
	if addr == 0 {
		return v, nil
	}
	// RegisterFunc panics on signatures it cannot call, such as struct
	// arguments on some targets.
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v, err = zero, fmt.Errorf("%w: %s: %v", ErrUnsupportedSignature, typ, r)
		}
	}()
	purego.RegisterFunc(&v, addr)
	return v, nil
}
