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

package tuple

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"
)

// TestDisjointConcurrentUse runs kernels from many goroutines, each on its
// own window of a shared buffer. Run with -race.
func TestDisjointConcurrentUse(t *testing.T) {
	const workers, width = 16, 64
	buf := make([]float32, workers*width)
	shared := Make(width)
	for i := range shared {
		shared[i] = float32(i)
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			window := Aligned(buf, w*width, width)
			for j := 0; j < 100; j++ {
				FMA(window, shared, Scalar(float32(w)), window)
			}
			if !IsFinite(window) {
				return fmt.Errorf("worker %d produced non-finite values", w)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	for w := 0; w < workers; w++ {
		want := Mul(Make(width), shared, Scalar(float32(100*w)))
		if diff := cmp.Diff(want, Aligned(buf, w*width, width)); diff != "" {
			t.Errorf("worker %d window mismatch (-want +got):\n%s", w, diff)
		}
	}
}
