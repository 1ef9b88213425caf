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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var allowLinkingError = cmp.AllowUnexported(LinkingError{})

func TestLinkingErrorShape(t *testing.T) {
	for _, test := range []struct {
		name    string
		err     *LinkingError
		want    *LinkingError
		message string
	}{
		{
			name:    "system",
			err:     NewSystemError("libfoo.so: cannot open shared object file", 0),
			want:    &LinkingError{kind: KindSystem, message: "libfoo.so: cannot open shared object file"},
			message: "dynlink: libfoo.so: cannot open shared object file",
		},
		{
			name:    "system with code",
			err:     NewSystemError("WIN32_ERROR 126", 126),
			want:    &LinkingError{kind: KindSystem, message: "WIN32_ERROR 126", code: 126},
			message: "dynlink: WIN32_ERROR 126",
		},
		{
			name:    "unknown",
			err:     NewUnknownError(),
			want:    &LinkingError{kind: KindUnknown},
			message: "dynlink: unknown linking error",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			if diff := cmp.Diff(test.want, test.err, allowLinkingError); diff != "" {
				t.Errorf("unexpected error value (-want +got):\n%s", diff)
			}
			assert.Equal(t, test.message, test.err.Error())
		})
	}
}

func TestLinkingErrorIs(t *testing.T) {
	sys := NewSystemError("boom", 0)
	unknown := NewUnknownError()

	assert.ErrorIs(t, sys, ErrSystem)
	assert.NotErrorIs(t, sys, ErrUnknown)
	assert.ErrorIs(t, unknown, ErrUnknown)
	assert.NotErrorIs(t, unknown, ErrSystem)

	wrapped := fmt.Errorf("loading plugin: %w", sys)
	assert.ErrorIs(t, wrapped, ErrSystem)

	// A specific error is not a sentinel for other errors of its kind.
	assert.NotErrorIs(t, NewSystemError("other", 0), sys)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "System", KindSystem.String())
	assert.Equal(t, "Unknown", KindUnknown.String())
	assert.Equal(t, "ErrorKind(9)", ErrorKind(9).String())
}

func TestNormalize(t *testing.T) {
	assert.NoError(t, normalize(nil))

	other := errors.New("posix: binding dlopen: not found")
	got := normalize(other)
	assert.ErrorIs(t, got, ErrUnknown)
	assert.ErrorIs(t, got, other, "cause must stay reachable")
	var lerr *LinkingError
	if assert.ErrorAs(t, got, &lerr) {
		assert.Equal(t, KindUnknown, lerr.Kind())
		assert.Same(t, other, lerr.Unwrap())
	}

	sys := NewSystemError("boom", 0)
	got = normalize(fmt.Errorf("wrapped: %w", sys))
	if diff := cmp.Diff(sys, got, allowLinkingError); diff != "" {
		t.Errorf("normalize() mismatch (-want +got):\n%s", diff)
	}
}
