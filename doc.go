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

// Package dynlink loads shared libraries at run time and calls into them,
// with one API over the POSIX loader (dlopen, dlsym, dlclose) and the
// Windows loader (LoadLibraryExW, GetProcAddress, FreeLibrary).
//
// A Handle owns one loaded library. Symbols resolved from it are typed by
// the lookup used:
//
//	lib, err := dynlink.Open("libsum.so")
//	if err != nil {
//		return err
//	}
//	defer lib.Close()
//
//	sumOf, err := dynlink.LookupFunc2[func(int32, int32) int32](lib, "sum_of")
//	if err != nil {
//		return err
//	}
//	sum, err := dynlink.Apply(sumOf, func(f func(int32, int32) int32) int32 {
//		return f(1, 1)
//	})
//
// # Safety
//
// The type a symbol is looked up as must match the symbol's real C
// signature: argument types, return type and calling convention. Nothing
// can check this and a mismatch is undefined behavior at the call.
//
// Apply refuses to run once the owning Handle is closed, and Close waits
// for every Apply in progress. Leak and
// LeakAsRaw hand out the bare value with no such check; using it after
// Close is undefined behavior.
//
// Opening a library runs its initializers, which is third party code
// running with the full rights of the process.
//
// # Concurrency
//
// Handles and symbols may be shared between goroutines. Thread safety of
// the calls themselves is inherited from the platform loader; dynlink only
// makes sure Close waits for in-flight lookups and calls and happens once.
//
// Function types take at most 15 arguments. A signature purego cannot call
// on the target, such as one with struct arguments where those are not
// supported, fails the lookup with ErrUnsupportedSignature.
package dynlink

//go:generate go run ./internal/cmd/genlookup -kind lookups -out lookup_gen.go
