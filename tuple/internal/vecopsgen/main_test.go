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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestGeneratedFilesUpToDate fails when a checked-in file no longer
// matches the generator. Run "go generate" in the tuple package to fix it.
func TestGeneratedFilesUpToDate(t *testing.T) {
	for _, tgt := range targets {
		t.Run(tgt.Type, func(t *testing.T) {
			want, err := generate(tgt)
			if err != nil {
				t.Fatal(err)
			}
			got, err := os.ReadFile(filepath.Join("..", "..", tgt.File))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(string(want), string(got)); diff != "" {
				t.Errorf("%s is stale (-generated +checked in):\n%s", tgt.File, diff)
			}
		})
	}
}

func TestGenerateShape(t *testing.T) {
	for _, tgt := range targets {
		src, err := generate(tgt)
		if err != nil {
			t.Fatalf("generate(%s): %v", tgt.Type, err)
		}
		s := string(src)
		if !strings.Contains(s, "// Code generated by vecopsgen. DO NOT EDIT.") {
			t.Errorf("%s: missing generated-code marker", tgt.File)
		}
		if got, want := strings.Count(s, "\nfunc (v "+tgt.Type+") "), len(kernels)+len(queries); got != want {
			t.Errorf("%s: %d methods, want %d", tgt.File, got, want)
		}
		if !strings.Contains(s, "return "+tgt.Deref+"Add("+tgt.Alloc+", v, b)") {
			t.Errorf("%s: Add does not allocate with %s", tgt.File, tgt.Alloc)
		}
	}
}
