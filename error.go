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
	"errors"
	"fmt"
)

// ErrorKind tells linking errors with a platform diagnostic from those
// without one.
type ErrorKind int

const (
	// KindSystem errors carry the platform's diagnostic.
	KindSystem ErrorKind = iota + 1
	// KindUnknown errors are failures the platform gave no reason for.
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindSystem:
		return "System"
	case KindUnknown:
		return "Unknown"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

var (
	// ErrSystem matches, with errors.Is, every KindSystem LinkingError.
	ErrSystem = &LinkingError{kind: KindSystem}
	// ErrUnknown matches, with errors.Is, every KindUnknown LinkingError.
	ErrUnknown = &LinkingError{kind: KindUnknown}

	// ErrClosed is returned when a closed Handle, or a symbol from one, is used.
	ErrClosed = errors.New("dynlink: handle is closed")

	// ErrUnsupportedSignature is returned by a lookup whose function type
	// cannot be called through the C ABI on this target.
	ErrUnsupportedSignature = errors.New("dynlink: unsupported signature")
)

// LinkingError is a failed open or lookup. It has the same shape on every
// platform: POSIX reports a message, Windows a status code whose display
// form becomes the message.
type LinkingError struct {
	kind    ErrorKind
	message string
	code    uint32
	err     error
}

// NewSystemError returns a KindSystem error. Loader implementations use it
// to report a diagnostic; code is zero where the platform has none.
func NewSystemError(message string, code uint32) *LinkingError {
	return &LinkingError{kind: KindSystem, message: message, code: code}
}

// NewUnknownError returns a KindUnknown error.
func NewUnknownError() *LinkingError {
	return &LinkingError{kind: KindUnknown}
}

func (e *LinkingError) Error() string {
	if e.kind == KindUnknown {
		return "dynlink: unknown linking error"
	}
	return "dynlink: " + e.message
}

func (e *LinkingError) Kind() ErrorKind {
	return e.kind
}

// Message is the human readable diagnostic. It is empty for KindUnknown.
func (e *LinkingError) Message() string {
	return e.message
}

// Code is the platform status code, or zero on platforms that report text.
func (e *LinkingError) Code() uint32 {
	return e.code
}

// Unwrap returns the platform error e was made from, if any.
func (e *LinkingError) Unwrap() error {
	return e.err
}

// Is matches the ErrSystem and ErrUnknown sentinels by kind.
func (e *LinkingError) Is(target error) bool {
	t, ok := target.(*LinkingError)
	if !ok || t.message != "" || t.code != 0 || t.err != nil {
		return false
	}
	return t.kind == e.kind
}

// normalize turns a loader's error into a *LinkingError. Platform linking
// errors keep their kind; anything else, such as a failure to bind the
// loader itself, becomes KindUnknown with err as its cause.
func normalize(err error) error {
	if err == nil {
		return nil
	}
	var lerr *LinkingError
	if errors.As(err, &lerr) {
		return lerr
	}
	if lerr, ok := fromPlatform(err); ok {
		return lerr
	}
	return &LinkingError{kind: KindUnknown, err: err}
}
