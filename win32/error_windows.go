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

import "fmt"

// SystemCode is a WIN32_ERROR value read with GetLastError.
type SystemCode uint32

func (c SystemCode) String() string {
	return fmt.Sprintf("WIN32_ERROR %d", uint32(c))
}

// LinkingError is a failed loader call. Unknown is set when GetLastError
// returned 0; Code is 0 then.
type LinkingError struct {
	Unknown bool
	Code    SystemCode
}

func (e *LinkingError) Error() string {
	if e.Unknown {
		return "win32: dynamic linking: unknown error"
	}
	return "win32: dynamic linking: " + e.Code.String()
}

func errorFrom(code uint32) *LinkingError {
	if code == 0 {
		return &LinkingError{Unknown: true}
	}
	return &LinkingError{Code: SystemCode(code)}
}
