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
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/dynlink-go/dynlink/internal/cstr"
)

// The procs are called directly instead of through windows.LoadLibraryEx
// and friends, whose error wrapping turns a zero last-error into EINVAL.
var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procLoadLibraryExW = kernel32.NewProc("LoadLibraryExW")
	procGetProcAddress = kernel32.NewProc("GetProcAddress")
	procFreeLibrary    = kernel32.NewProc("FreeLibrary")
)

// LoadLibraryEx maps the library at path. The library's DllMain runs before
// this returns.
func LoadLibraryEx(path WCStr, flags LoadFlags) (uintptr, error) {
	lib, _, lastErr := procLoadLibraryExW.Call(uintptr(unsafe.Pointer(path.Ptr())), 0, uintptr(flags))
	if lib != 0 {
		return lib, nil
	}
	return 0, errorFrom(lastError(lastErr))
}

// GetProcAddress resolves name in the library lib. The name is cut at its
// first NUL byte. A NULL result is always a failure on Windows.
func GetProcAddress(lib uintptr, name string) (uintptr, error) {
	cname := cstr.Bytes(name)
	addr, _, lastErr := procGetProcAddress.Call(lib, uintptr(unsafe.Pointer(&cname[0])))
	if addr != 0 {
		return addr, nil
	}
	return 0, errorFrom(lastError(lastErr))
}

// FreeLibrary drops one reference to the library lib.
func FreeLibrary(lib uintptr) error {
	ok, _, lastErr := procFreeLibrary.Call(lib)
	if ok != 0 {
		return nil
	}
	return errorFrom(lastError(lastErr))
}

func lastError(err error) uint32 {
	if errno, ok := err.(syscall.Errno); ok {
		return uint32(errno)
	}
	return 0
}
