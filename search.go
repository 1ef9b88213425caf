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
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// EnvLibraryPath lists directories searched before the platform's own
// library path variable, separated like PATH.
const EnvLibraryPath = "DYNLINK_LIBRARY_PATH"

// ErrNotFound is returned when a library search finds no candidate.
var ErrNotFound = errors.New("dynlink: library not found")

// LibraryFileName returns the platform file name for a bare library name:
// libNAME.so, libNAME.dylib or NAME.dll. Names that already carry a library
// extension are returned unchanged.
func LibraryFileName(name string) string {
	if hasLibraryExt(name) {
		return name
	}
	switch runtime.GOOS {
	case "windows":
		return name + ".dll"
	case "darwin":
		return withLibPrefix(name) + ".dylib"
	default:
		return withLibPrefix(name) + ".so"
	}
}

func withLibPrefix(name string) string {
	if strings.HasPrefix(filepath.Base(name), "lib") {
		return name
	}
	dir, file := filepath.Split(name)
	return dir + "lib" + file
}

func hasLibraryExt(name string) bool {
	switch filepath.Ext(name) {
	case ".so", ".dylib", ".dll":
		return true
	}
	// Versioned sonames such as libc.so.6.
	return strings.Contains(filepath.Base(name), ".so.")
}

// SearchPath returns the directories Search looks in, in order: the
// entries of DYNLINK_LIBRARY_PATH, then the platform's library path
// variable, then the working directory.
func SearchPath() []string {
	var dirs []string
	for _, env := range []string{EnvLibraryPath, platformPathEnv()} {
		for _, dir := range filepath.SplitList(os.Getenv(env)) {
			if dir != "" {
				dirs = append(dirs, dir)
			}
		}
	}
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	return dirs
}

func platformPathEnv() string {
	switch runtime.GOOS {
	case "windows":
		return "PATH"
	case "darwin":
		return "DYLD_LIBRARY_PATH"
	default:
		return "LD_LIBRARY_PATH"
	}
}

// Search returns the path of the first existing file named
// LibraryFileName(name) in dirs, or in SearchPath() when dirs is empty.
func Search(name string, dirs ...string) (string, error) {
	if len(dirs) == 0 {
		dirs = SearchPath()
	}
	file := LibraryFileName(name)
	for _, dir := range dirs {
		path := filepath.Join(dir, file)
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrNotFound, file, strings.Join(dirs, string(os.PathListSeparator)))
}
