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

package win32

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
	"unsafe"
)

var (
	// ErrNoNul is returned by FromWideUntilNul when data holds no NUL.
	ErrNoNul = errors.New("win32: data provided does not contain a nul")
	// ErrNotNulTerminated is returned by FromWideWithNul when data holds no NUL.
	ErrNotNulTerminated = errors.New("win32: data provided is not nul terminated")
)

// InteriorNulError is returned by FromWideWithNul when a NUL appears before
// the last element.
type InteriorNulError struct {
	Position int
}

func (e *InteriorNulError) Error() string {
	return fmt.Sprintf("win32: data provided contains an interior nul at position %d", e.Position)
}

// WCStr is a NUL-terminated UTF-16 string. The terminator is the only NUL
// it holds. The zero value is the empty string.
type WCStr struct {
	data []uint16
}

// FromWideUntilNul wraps data up to and including its first NUL. The
// result shares memory with data.
func FromWideUntilNul(data []uint16) (WCStr, error) {
	idx := index(data)
	if idx < 0 {
		return WCStr{}, ErrNoNul
	}
	return WCStr{data: data[:idx+1:idx+1]}, nil
}

// FromWideWithNul wraps data, which must end in its only NUL. The result
// shares memory with data.
func FromWideWithNul(data []uint16) (WCStr, error) {
	switch idx := index(data); {
	case idx < 0:
		return WCStr{}, ErrNotNulTerminated
	case idx != len(data)-1:
		return WCStr{}, &InteriorNulError{Position: idx}
	}
	return WCStr{data: data}, nil
}

// FromString encodes s as UTF-16. Like the C functions that will read it,
// it ends at the first NUL in s.
func FromString(s string) WCStr {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return WCStr{data: append(utf16.Encode([]rune(s)), 0)}
}

// FromPtr wraps the NUL-terminated string at p without copying it.
//
// p must point to a NUL-terminated UTF-16 buffer that outlives the result.
func FromPtr(p *uint16) WCStr {
	if p == nil {
		return WCStr{}
	}
	n := 0
	for ptr := unsafe.Pointer(p); *(*uint16)(unsafe.Add(ptr, 2*n)) != 0; n++ {
	}
	return WCStr{data: unsafe.Slice(p, n+1)}
}

// Wide returns the string's code units without the terminator.
func (s WCStr) Wide() []uint16 {
	d := s.withNul()
	n := len(d) - 1
	return d[:n:n]
}

// WideWithNul returns the string's code units including the terminator.
func (s WCStr) WideWithNul() []uint16 {
	return s.withNul()
}

// Ptr returns a pointer to the first code unit, suitable for passing to
// Windows APIs taking LPCWSTR.
func (s WCStr) Ptr() *uint16 {
	return &s.withNul()[0]
}

// String decodes the string to UTF-8.
func (s WCStr) String() string {
	return string(utf16.Decode(s.Wide()))
}

// GoString prints the code units in hex, as the loader sees them.
func (s WCStr) GoString() string {
	var b strings.Builder
	b.WriteString("[")
	for _, c := range s.withNul() {
		fmt.Fprintf(&b, " %02X ", c)
	}
	b.WriteString("]")
	return b.String()
}

func (s WCStr) withNul() []uint16 {
	if len(s.data) == 0 {
		return []uint16{0}
	}
	return s.data
}

func index(data []uint16) int {
	for i, c := range data {
		if c == 0 {
			return i
		}
	}
	return -1
}
