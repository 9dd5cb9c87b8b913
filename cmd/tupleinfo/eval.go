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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-tuple/tuple"
	"github.com/ajroetker/go-tuple/tuple/segment"
)

// layoutFlag selects where eval stores vector results. Unset means a plain
// heap vector.
type layoutFlag struct {
	layout segment.Layout
	set    bool
}

var _ pflag.Value = (*layoutFlag)(nil)

func (f *layoutFlag) String() string {
	if !f.set {
		return ""
	}
	return f.layout.String()
}

func (f *layoutFlag) Set(s string) error {
	for _, l := range []segment.Layout{segment.Float32, segment.Float16, segment.BFloat16} {
		if strings.EqualFold(s, l.String()) {
			f.layout, f.set = l, true
			return nil
		}
	}
	return fmt.Errorf("unknown layout %q (want float32, float16 or bfloat16)", s)
}

func (f *layoutFlag) Type() string { return "layout" }

func newEvalCmd(log *logrus.Logger) *cobra.Command {
	var layout layoutFlag

	cmd := &cobra.Command{
		Use:   "eval <op> <operand>...",
		Short: "Evaluate one operation on literal operands",
		Long: `Evaluate one operation on literal operands.

An operand is a comma-separated vector such as 1,2,3 or a single number,
which is broadcast to every component. A trailing comma makes a
one-component vector (2,) and a lone comma is the empty vector. Put --
before the operands when the first one starts with a minus sign. Run
"tupleinfo ops" for the list of operations.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := evaluate(log, args[0], args[1:], layout)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().Var(&layout, "layout", "Store vector results in an off-heap segment with this element layout (float32, float16, bfloat16)")
	return cmd
}

// parseOperand turns "1,2,3" into a Vec and "2" into a broadcast Scalar.
// A trailing comma makes a one-component vector: "2,". A lone "," is the
// empty vector. Any other empty component is an error.
func parseOperand(s string) (tuple.Source, error) {
	if s == "," {
		return tuple.Vec{}, nil
	}
	fields := strings.Split(s, ",")
	if len(fields) > 1 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	if lo.ContainsBy(fields, func(p string) bool { return strings.TrimSpace(p) == "" }) {
		return nil, fmt.Errorf("operand %q: empty component", s)
	}

	var parseErr error
	vals := lo.Map(fields, func(p string, _ int) float32 {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("operand %q: %w", s, err)
		}
		return float32(f)
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if len(vals) == 1 && !strings.Contains(s, ",") {
		return tuple.Scalar(vals[0]), nil
	}
	return tuple.Vec(vals), nil
}

// resultLen is the length of the first non-broadcast operand, or 1 when
// every operand is a broadcast.
func resultLen(args []tuple.Source) int {
	lens := lo.FilterMap(args, func(s tuple.Source, _ int) (int, bool) {
		return s.Len(), s.Len() != tuple.AnyLen
	})
	if len(lens) == 0 {
		return 1
	}
	return lens[0]
}

func evaluate(log *logrus.Logger, name string, raw []string, layout layoutFlag) (result string, err error) {
	op, ok := lo.Find(operations, func(o operation) bool { return o.name == name })
	if !ok {
		return "", fmt.Errorf("unknown operation %q, run \"tupleinfo ops\" for the list", name)
	}
	if len(raw) != op.arity {
		return "", fmt.Errorf("%s takes %d operands, got %d", name, op.arity, len(raw))
	}

	args := make([]tuple.Source, len(raw))
	for i, s := range raw {
		if args[i], err = parseOperand(s); err != nil {
			return "", err
		}
		log.WithFields(logrus.Fields{"index": i, "len": args[i].Len()}).Debug("parsed operand")
	}
	if op.check != nil {
		if err := op.check(args); err != nil {
			return "", err
		}
	}

	// Kernels panic on mismatched operands; report those as errors.
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !(errors.Is(e, tuple.ErrLengthMismatch) || errors.Is(e, tuple.ErrIndexOutOfRange)) {
				panic(r)
			}
			result, err = "", e
		}
	}()

	if op.kernel == nil {
		return op.eval(args), nil
	}

	n := resultLen(args)
	if !layout.set {
		dst := tuple.Make(n)
		op.kernel(dst, args)
		return fmt.Sprint(dst), nil
	}

	seg, err := segment.Alloc(n * layout.layout.Size())
	if err != nil {
		return "", err
	}
	defer seg.Close()

	view := seg.View(layout.layout, 0, n)
	op.kernel(view, args)
	log.WithFields(logrus.Fields{
		"layout": layout.layout,
		"bytes":  seg.Size(),
	}).Debug("stored result in segment")
	return fmt.Sprint(view.Floats()), nil
}
