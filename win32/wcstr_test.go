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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromWideUntilNulWrapsWhenDataContainsNul(t *testing.T) {
	data := []uint16{1, 1, 1, 0, 1, 1}

	s, err := FromWideUntilNul(data)
	require.NoError(t, err, "data with nul was not wrapped")
	assert.Equal(t, []uint16{1, 1, 1, 0}, s.WideWithNul())
}

func TestFromWideUntilNulFailsWhenDataDoesNotContainNul(t *testing.T) {
	_, err := FromWideUntilNul([]uint16{1, 1, 1, 1, 1, 1})
	assert.ErrorIs(t, err, ErrNoNul)
}

func TestFromWideWithNulWrapsWhenDataContainsLastNul(t *testing.T) {
	data := []uint16{1, 1, 1, 1, 1, 0}

	s, err := FromWideWithNul(data)
	require.NoError(t, err, "data with last nul was not wrapped")
	assert.Equal(t, data, s.WideWithNul())
}

func TestFromWideWithNulFailsWhenDataDoesNotContainNul(t *testing.T) {
	_, err := FromWideWithNul([]uint16{1, 1, 1, 1, 1, 1})
	assert.ErrorIs(t, err, ErrNotNulTerminated)
}

func TestFromWideWithNulFailsWhenDataContainsInteriorNul(t *testing.T) {
	_, err := FromWideWithNul([]uint16{1, 1, 1, 0, 1, 1})

	var ierr *InteriorNulError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, 3, ierr.Position)
	assert.EqualError(t, err, "win32: data provided contains an interior nul at position 3")
}

func TestFromPtrWrapsWhenDataContainsNul(t *testing.T) {
	data := []uint16{1, 1, 1, 1, 1, 0}

	s := FromPtr(&data[0])
	assert.Equal(t, data, s.WideWithNul())
	assert.Equal(t, WCStr{}, FromPtr(nil))
}

func TestWideReturnsSliceWithoutLastNul(t *testing.T) {
	s, err := FromWideWithNul([]uint16{1, 1, 1, 1, 1, 0})
	require.NoError(t, err)

	assert.Equal(t, []uint16{1, 1, 1, 1, 1}, s.Wide())
	assert.Equal(t, []uint16{1, 1, 1, 1, 1, 0}, s.WideWithNul())
}

func TestFromStringStopsAtFirstNul(t *testing.T) {
	s := FromString("libsum.dll\x00ignored")
	assert.Equal(t, "libsum.dll", s.String())
	assert.Equal(t, uint16(0), s.WideWithNul()[len(s.WideWithNul())-1])

	u := FromString("библиотека.dll")
	assert.Equal(t, "библиотека.dll", u.String())
}

func TestZeroWCStrIsEmpty(t *testing.T) {
	var s WCStr
	assert.Empty(t, s.Wide())
	assert.Equal(t, []uint16{0}, s.WideWithNul())
	assert.Equal(t, uint16(0), *s.Ptr())
	assert.Equal(t, "[ 00 ]", s.GoString())
}
