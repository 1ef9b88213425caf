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

// Command genlookup renders the arity-enumerated signature constraints and
// typed lookup functions.
//
// Usage:
//
//	genlookup -kind constraints -out pointersized/signatures_gen.go
//	genlookup -kind lookups -out lookup_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"os/exec"

	"github.com/cli/safeexec"

	"github.com/dynlink-go/dynlink/internal/codegen"
)

func main() {
	kind := flag.String("kind", "", "what to render: constraints or lookups")
	out := flag.String("out", "", "output file")
	flag.Parse()

	if err := generate(*kind, *out); err != nil {
		fmt.Fprintln(os.Stderr, "genlookup:", err)
		os.Exit(1)
	}
}

func generate(kind, out string) error {
	if out == "" {
		return fmt.Errorf("missing -out")
	}
	var name string
	switch kind {
	case "constraints", "lookups":
		name = kind + ".tmpl"
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}

	tmpl, err := codegen.Templates()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = tmpl.ExecuteTemplate(&buf, name, codegen.Arities(codegen.MaxArity)); err != nil {
		return err
	}
	src, err := gofmt(buf.Bytes())
	if err != nil {
		return err
	}
	return os.WriteFile(out, src, 0o644)
}

// gofmt formats src with the gofmt found on PATH. safeexec keeps a gofmt in
// the working directory from shadowing the toolchain's on Windows.
func gofmt(src []byte) ([]byte, error) {
	path, err := safeexec.LookPath("gofmt")
	if err != nil {
		return nil, err
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(path)
	cmd.Stdin = bytes.NewReader(src)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err = cmd.Run(); err != nil {
		return nil, fmt.Errorf("gofmt: %w: %s", err, stderr.Bytes())
	}
	return stdout.Bytes(), nil
}
