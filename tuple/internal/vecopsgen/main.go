// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// vecopsgen writes the return-new methods of Vec, Vec2 and Vec3.
//
// Every method forwards to the package-level kernel with a freshly
// allocated sink, so the three files differ only in the receiver type and
// in how the sink is allocated.
//
// Usage, from the tuple package directory:
//
//	go run ./internal/vecopsgen [-output dir]
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"text/template"
)

// target describes one receiver type.
type target struct {
	File  string
	Type  string
	Intro []string

	// Alloc allocates the sink and Deref converts the kernel's return
	// value back to Type.
	Alloc string
	Deref string
}

var targets = []target{
	{
		File: "vec_ops.go",
		Type: "Vec",
		Intro: []string{
			"Vec methods allocate a new vector of the receiver's length. To reuse",
			"storage pass the receiver or another buffer as the sink instead.",
		},
		Alloc: "Make(len(v))",
	},
	{
		File: "vec2_ops.go",
		Type: "Vec2",
		Intro: []string{
			"Vec2 methods return a new value and never modify the receiver. To update",
			"a Vec2 in place pass its address as the sink: tuple.Add(&v, v, b).",
		},
		Alloc: "new(Vec2)",
		Deref: "*",
	},
	{
		File: "vec3_ops.go",
		Type: "Vec3",
		Intro: []string{
			"Vec3 methods return a new value and never modify the receiver. To update",
			"a Vec3 in place pass its address as the sink: tuple.Add(&v, v, b).",
		},
		Alloc: "new(Vec3)",
		Deref: "*",
	},
}

// kernel is a method that returns a vector of the receiver's type.
type kernel struct {
	Name, Doc, Params, Args string
}

func binary(name, doc, param string) kernel {
	return kernel{name, doc, param + " Source", ", " + param}
}

func ternary(name, doc, p1, p2 string) kernel {
	return kernel{name, doc, p1 + ", " + p2 + " Source", ", " + p1 + ", " + p2}
}

func unary(name, doc string) kernel {
	return kernel{Name: name, Doc: doc}
}

var kernels = []kernel{
	binary("Add", "returns v + b.", "b"),
	binary("Sub", "returns v - b.", "b"),
	binary("ReverseSub", "returns b - v.", "b"),
	binary("Mul", "returns the component-wise product v * b.", "b"),
	binary("Div", "returns v / b.", "b"),
	binary("ReverseDiv", "returns b / v.", "b"),
	binary("Pow", "returns v raised component-wise to the power b.", "b"),
	binary("ReversePow", "returns b raised component-wise to the power v.", "b"),
	binary("Min", "returns the component-wise minimum of v and b.", "b"),
	binary("Max", "returns the component-wise maximum of v and b.", "b"),
	binary("ClampMin", "returns v with every component raised to at least lo.", "lo"),
	binary("ClampMax", "returns v with every component lowered to at most hi.", "hi"),
	ternary("FMA", "returns v*b + c rounded once per component.", "b", "c"),
	ternary("FAM", "returns b*c + v rounded once per component.", "b", "c"),
	ternary("Clamp", "returns v with every component limited to [lo, hi].", "lo", "hi"),
	unary("Sqrt", "returns the component-wise square root of v."),
	unary("Cbrt", "returns the component-wise cube root of v."),
	unary("Abs", "returns the component-wise absolute value of v."),
	unary("Reciprocal", "returns 1 / v."),
	unary("Negate", "returns -v."),
	unary("Squared", "returns v * v."),
	unary("Signum", "returns the component-wise sign of v."),
}

// query is a method that forwards to a fold or predicate.
type query struct {
	Name, Doc, Params, Result, Args string
}

var queries = []query{
	{"MinComponent", "returns the smallest component of v.", "", "float32", "v"},
	{"MaxComponent", "returns the largest component of v.", "", "float32", "v"},
	{"Equals", "reports whether v and b hold exactly the same components.", "b Source", "bool", "v, b"},
	{"EqualsEM", "reports whether v and b differ by at most tol per component.", "tol float32, b Source", "bool", "tol, v, b"},
	{"IsZero", "reports whether every component of v is zero.", "", "bool", "v"},
	{"IsFinite", "reports whether every component of v is finite.", "", "bool", "v"},
}

const header = `// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
`

var fileTmpl = template.Must(template.New("ops").Parse(header + `
// Code generated by vecopsgen. DO NOT EDIT.

package tuple
{{with .Target}}
{{range .Intro}}// {{.}}
{{end}}{{end}}
{{- range .Kernels}}
// {{.Name}} {{.Doc}}
func (v {{$.Target.Type}}) {{.Name}}({{.Params}}) {{$.Target.Type}} { return {{$.Target.Deref}}{{.Name}}({{$.Target.Alloc}}, v{{.Args}}) }
{{end}}
{{- range .Queries}}
// {{.Name}} {{.Doc}}
func (v {{$.Target.Type}}) {{.Name}}({{.Params}}) {{.Result}} { return {{.Name}}({{.Args}}) }
{{end}}`))

// generate renders and formats the source for t.
func generate(t target) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTmpl.Execute(&buf, struct {
		Target  target
		Kernels []kernel
		Queries []query
	}{t, kernels, queries})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.File, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%s: formatting generated code: %w", t.File, err)
	}
	return src, nil
}

func main() {
	output := flag.String("output", ".", "Directory to write the generated files to")
	flag.Parse()

	for _, t := range targets {
		src, err := generate(t)
		if err != nil {
			log.Fatal(err)
		}
		path := filepath.Join(*output, t.File)
		if err := os.WriteFile(path, src, 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Generated %s\n", path)
	}
}
