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

// Package pointersized names the types that may stand for a resolved symbol:
// types whose value is exactly one machine address.
//
// Those are raw address types (Pointer) and function types. Go cannot name
// "any function type" in a single constraint, so function types are covered
// by one constraint per arity: FuncN for functions returning a value and
// ProcN for functions returning nothing, each for 0 through 15 arguments,
// the most a foreign call through purego can pass. Lookups constrained by
// these fail to compile for any other type.
//
// Satisfying a constraint is necessary, not sufficient. Nothing can check
// that a type matches the ABI of the symbol it is applied to; that is the
// caller's obligation.
package pointersized

//go:generate go run ../internal/cmd/genlookup -kind constraints -out signatures_gen.go

import (
	"reflect"
	"unsafe"
)

// Pointer is satisfied by opaque data address types.
type Pointer interface {
	~uintptr | unsafe.Pointer
}

// Is reports whether values of t are a single machine address: a function,
// a uintptr-kinded type, or unsafe.Pointer.
func Is(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Func, reflect.Uintptr, reflect.UnsafePointer:
		return true
	}
	return false
}
