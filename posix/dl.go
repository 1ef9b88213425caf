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

//go:build (darwin || freebsd || linux) && !android && !faketime

package posix

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/dynlink-go/dynlink/internal/cstr"
)

// libdl holds the loader entry points with their raw C signatures. purego's
// own Dlopen and Dlsym fold a NULL dlerror into an empty message, which loses
// the difference between "no diagnostic" and "failed", so they are rebound here.
type libdl struct {
	dlopen  func(path *byte, mode int32) uintptr
	dlsym   func(handle uintptr, name *byte) uintptr
	dlclose func(handle uintptr) int32
	dlerror func() *byte
}

var loadLibdl = sync.OnceValues(func() (*libdl, error) {
	var lib libdl
	for _, fn := range []struct {
		fptr any
		name string
	}{
		{&lib.dlopen, "dlopen"},
		{&lib.dlsym, "dlsym"},
		{&lib.dlclose, "dlclose"},
		{&lib.dlerror, "dlerror"},
	} {
		addr, err := purego.Dlsym(purego.RTLD_DEFAULT, fn.name)
		if err != nil {
			return nil, fmt.Errorf("posix: binding %s: %w", fn.name, err)
		}
		purego.RegisterFunc(fn.fptr, addr)
	}
	return &lib, nil
})

// Dlopen maps the library at path with the given mode. The path is cut at
// its first NUL byte.
//
// On success the library's initializers have run on the calling thread.
func Dlopen(path string, flags Flags) (uintptr, error) {
	dl, err := loadLibdl()
	if err != nil {
		return 0, err
	}
	cpath := cstr.Bytes(path)

	// dlerror state is per thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if staleDiagnostics {
		dl.dlerror()
	}
	handle := dl.dlopen(&cpath[0], int32(flags))
	if handle != 0 {
		return handle, nil
	}
	return 0, errorFrom(dl.dlerror())
}

// Dlsym resolves name in the library behind handle. The name is cut at its
// first NUL byte.
//
// A NULL address is only an error when the loader says so; see resolved.
func Dlsym(handle uintptr, name string) (uintptr, error) {
	dl, err := loadLibdl()
	if err != nil {
		return 0, err
	}
	cname := cstr.Bytes(name)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if staleDiagnostics {
		dl.dlerror()
	}
	addr := dl.dlsym(handle, &cname[0])
	if addr != 0 {
		return addr, nil
	}
	return resolved(addr, dl.dlerror(), zeroAddressValid)
}

// Dlclose drops one reference to the library behind handle.
func Dlclose(handle uintptr) error {
	dl, err := loadLibdl()
	if err != nil {
		return err
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if staleDiagnostics {
		dl.dlerror()
	}
	if dl.dlclose(handle) == 0 {
		return nil
	}
	return errorFrom(dl.dlerror())
}

// resolved classifies a NULL dlsym result. Where dlerror is guaranteed fresh
// for every call (zeroValid), a NULL address with no diagnostic is a symbol
// whose value really is zero. Elsewhere a NULL address is always a failure.
func resolved(addr uintptr, diag *byte, zeroValid bool) (uintptr, error) {
	if diag == nil && zeroValid {
		return addr, nil
	}
	return 0, errorFrom(diag)
}
