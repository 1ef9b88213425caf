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

// Package posix opens shared objects with the POSIX dynamic linking
// interface: dlopen, dlsym, dlclose and dlerror.
//
// The loader entry points are bound at first use through purego, so no cgo
// is required. Only darwin, freebsd and linux are supported; on other
// targets the package is empty.
//
// A Handle is safe for concurrent use. That guarantee is inherited from the
// system loader, which POSIX requires to be thread-safe; this package adds
// only the bookkeeping that keeps a handle from being used after Close.
package posix
