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
	"fmt"
	"io"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/pbnjay/memory"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-tuple/tuple"
)

// configureLogger points log at w, at info level or at debug level when
// verbose is set.
func configureLogger(log *logrus.Logger, w io.Writer, verbose bool) {
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	log := logrus.New()

	root := &cobra.Command{
		Use:          "tupleinfo",
		Short:        "Report tuple kernel dispatch and evaluate operations",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogger(log, cmd.ErrOrStderr(), verbose)
			log.WithFields(logrus.Fields{
				"dispatch": tuple.CurrentName(),
				"no_fast":  tuple.NoFastPathEnv(),
			}).Debug("tuple initialized")
		},
		Run: func(cmd *cobra.Command, args []string) {
			printInfo(cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(newBandsCmd(), newOpsCmd(), newEvalCmd(log))
	return root
}

func printInfo(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	if total := memory.TotalMemory(); total > 0 {
		fmt.Fprintf(w, "Memory: %s\n", humanize.IBytes(total))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Dispatch level: %s\n", tuple.CurrentName())
	fmt.Fprintf(w, "Fast path disabled: %v\n", tuple.NoFastPathEnv())
	fmt.Fprintf(w, "Hardware FMA: %v\n", tuple.HasFMA())
	fmt.Fprintln(w)

	switch runtime.GOARCH {
	case "arm64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
		fmt.Fprintf(w, "  HasFP:      %v (Floating point)\n", cpu.ARM64.HasFP)
		fmt.Fprintf(w, "  HasASIMD:   %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
		fmt.Fprintf(w, "  HasFPHP:    %v (FP16 scalar)\n", cpu.ARM64.HasFPHP)
		fmt.Fprintf(w, "  HasASIMDHP: %v (FP16 NEON)\n", cpu.ARM64.HasASIMDHP)
	case "amd64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
		fmt.Fprintf(w, "  HasFMA:     %v\n", cpu.X86.HasFMA)
		fmt.Fprintf(w, "  HasAVX:     %v\n", cpu.X86.HasAVX)
		fmt.Fprintf(w, "  HasAVX2:    %v\n", cpu.X86.HasAVX2)
		fmt.Fprintf(w, "  HasSSE41:   %v\n", cpu.X86.HasSSE41)
	}
}
