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

package dynlink

import (
	"errors"

	"github.com/dynlink-go/dynlink/posix"
)

// Flags is the dlopen mode, an OR-combination of the posix.RTLD_* values.
type Flags = posix.Flags

const defaultFlags = posix.DefaultFlags

// The platform handle can back symbols directly.
var _ Table = (*posix.Handle)(nil)

type systemLoader struct{}

func (systemLoader) Open(path string, flags Flags) (uintptr, error) {
	return posix.Dlopen(path, flags)
}

func (systemLoader) Lookup(lib uintptr, name string) (uintptr, error) {
	return posix.Dlsym(lib, name)
}

func (systemLoader) Close(lib uintptr) error {
	return posix.Dlclose(lib)
}

func fromPlatform(err error) (*LinkingError, bool) {
	var perr *posix.LinkingError
	if !errors.As(err, &perr) {
		return nil, false
	}
	if perr.Unknown {
		return &LinkingError{kind: KindUnknown, err: perr}, true
	}
	return &LinkingError{kind: KindSystem, message: perr.Message.String(), err: perr}, true
}
