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

package dynlink

import (
	"errors"

	"github.com/dynlink-go/dynlink/win32"
)

// Flags is the LoadLibraryExW mode, an OR-combination of the win32.LOAD_*
// values.
type Flags = win32.LoadFlags

const defaultFlags = win32.DefaultFlags

// The platform handle can back symbols directly.
var _ Table = (*win32.Handle)(nil)

type systemLoader struct{}

func (systemLoader) Open(path string, flags Flags) (uintptr, error) {
	return win32.LoadLibraryEx(win32.FromString(path), flags)
}

func (systemLoader) Lookup(lib uintptr, name string) (uintptr, error) {
	return win32.GetProcAddress(lib, name)
}

func (systemLoader) Close(lib uintptr) error {
	return win32.FreeLibrary(lib)
}

func fromPlatform(err error) (*LinkingError, bool) {
	var werr *win32.LinkingError
	if !errors.As(err, &werr) {
		return nil, false
	}
	if werr.Unknown {
		return &LinkingError{kind: KindUnknown, err: werr}, true
	}
	return &LinkingError{
		kind:    KindSystem,
		message: werr.Code.String(),
		code:    uint32(werr.Code),
		err:     werr,
	}, true
}
