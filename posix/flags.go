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

import "github.com/ebitengine/purego"

// Flags is an OR-combination of RTLD_* mode bits passed to dlopen.
type Flags int

const (
	// RTLD_LAZY resolves function relocations on first call.
	RTLD_LAZY Flags = purego.RTLD_LAZY
	// RTLD_NOW resolves all relocations before dlopen returns.
	RTLD_NOW Flags = purego.RTLD_NOW
	// RTLD_GLOBAL makes the library's symbols available to libraries loaded later.
	RTLD_GLOBAL Flags = purego.RTLD_GLOBAL
	// RTLD_LOCAL keeps the library's symbols private to this handle.
	RTLD_LOCAL Flags = purego.RTLD_LOCAL
)

// DefaultFlags is the mode Open uses.
const DefaultFlags = RTLD_LAZY | RTLD_LOCAL
