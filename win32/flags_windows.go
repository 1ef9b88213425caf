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

// LoadFlags is an OR-combination of LOAD_* flags passed to LoadLibraryExW.
type LoadFlags uint32

const (
	DONT_RESOLVE_DLL_REFERENCES         LoadFlags = 0x00000001
	LOAD_LIBRARY_AS_DATAFILE            LoadFlags = 0x00000002
	LOAD_WITH_ALTERED_SEARCH_PATH       LoadFlags = 0x00000008
	LOAD_IGNORE_CODE_AUTHZ_LEVEL        LoadFlags = 0x00000010
	LOAD_LIBRARY_AS_IMAGE_RESOURCE      LoadFlags = 0x00000020
	LOAD_LIBRARY_AS_DATAFILE_EXCLUSIVE  LoadFlags = 0x00000040
	LOAD_LIBRARY_REQUIRE_SIGNED_TARGET  LoadFlags = 0x00000080
	LOAD_LIBRARY_SEARCH_DLL_LOAD_DIR    LoadFlags = 0x00000100
	LOAD_LIBRARY_SEARCH_APPLICATION_DIR LoadFlags = 0x00000200
	LOAD_LIBRARY_SEARCH_USER_DIRS       LoadFlags = 0x00000400
	LOAD_LIBRARY_SEARCH_SYSTEM32        LoadFlags = 0x00000800
	LOAD_LIBRARY_SEARCH_DEFAULT_DIRS    LoadFlags = 0x00001000
	LOAD_LIBRARY_SAFE_CURRENT_DIRS      LoadFlags = 0x00002000
)

// DefaultFlags is the mode Open uses: the standard DLL search order.
const DefaultFlags LoadFlags = 0
