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

import "github.com/dynlink-go/dynlink/internal/cstr"

// SystemMessage is a diagnostic reported by dlerror, copied out of the
// loader's buffer.
type SystemMessage string

func (m SystemMessage) String() string {
	return string(m)
}

// LinkingError is a failed loader call. Unknown is set when the loader
// reported the failure without a diagnostic; Message is empty then.
type LinkingError struct {
	Unknown bool
	Message SystemMessage
}

func (e *LinkingError) Error() string {
	if e.Unknown {
		return "posix: dynamic linking: unknown error"
	}
	return "posix: dynamic linking: " + string(e.Message)
}

// errorFrom copies the dlerror result at diag. The loader may reuse that
// buffer on its next call, so nothing keeps a reference to it.
func errorFrom(diag *byte) *LinkingError {
	if diag == nil {
		return &LinkingError{Unknown: true}
	}
	return &LinkingError{Message: SystemMessage(cstr.GoString(diag))}
}
