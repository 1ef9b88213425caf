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

// Package win32 opens dynamic-link libraries with LoadLibraryExW,
// GetProcAddress and FreeLibrary.
//
// The loader is only available when building for windows. WCStr, the
// NUL-terminated UTF-16 string type the loader takes paths as, builds
// everywhere.
//
// A Handle is safe for concurrent use; the Windows loader serializes its
// own state under the loader lock.
package win32
