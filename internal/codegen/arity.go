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

// Package codegen holds the data the arity-enumerated files are rendered from.
package codegen

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"
)

// MaxArity is the largest argument count a symbol signature may have.
const MaxArity = 15

//go:embed tmpl/*.tmpl
var templates embed.FS

// Templates returns the parsed templates, keyed by file name.
func Templates() (*template.Template, error) {
	return template.ParseFS(templates, "tmpl/*.tmpl")
}

// Arity describes the signatures with N arguments.
type Arity struct {
	N int
}

// Arities returns every arity from 0 to max inclusive.
func Arities(max int) []Arity {
	a := make([]Arity, max+1)
	for i := range a {
		a[i] = Arity{N: i}
	}
	return a
}

// Params returns the argument type parameter names, A1 through AN.
func (a Arity) Params() []string {
	p := make([]string, a.N)
	for i := range p {
		p[i] = fmt.Sprintf("A%d", i+1)
	}
	return p
}

// Ident names the declaration of kind for this arity: kind is a snake case
// phrase, so Ident("lookup_func") is "LookupFunc2" for two arguments.
func (a Arity) Ident(kind string) string {
	return strcase.ToCamel(fmt.Sprintf("%s_%d", kind, a.N))
}

func (a Arity) FuncName() string { return a.Ident("func") }

func (a Arity) ProcName() string { return a.Ident("proc") }

// ProcArgs is the comma separated argument list of a ProcN.
func (a Arity) ProcArgs() string {
	return strings.Join(a.Params(), ", ")
}

// FuncArgs is the comma separated type argument list of a FuncN.
func (a Arity) FuncArgs() string {
	return strings.Join(append(a.Params(), "R"), ", ")
}

// ProcTypeParams declares the type parameters of a ProcN, or is empty when
// there are none.
func (a Arity) ProcTypeParams() string {
	if a.N == 0 {
		return ""
	}
	return a.ProcArgs() + " any"
}

// FuncTypeParams declares the type parameters of a FuncN.
func (a Arity) FuncTypeParams() string {
	return a.FuncArgs() + " any"
}

// Describe spells out the argument count for doc comments.
func (a Arity) Describe() string {
	switch a.N {
	case 0:
		return "no arguments"
	case 1:
		return "1 argument"
	}
	return fmt.Sprintf("%d arguments", a.N)
}
