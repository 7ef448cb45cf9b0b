// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/katalvlaran/densemat/matrix"
)

// newEnvCmd reports the host features that decide how the kernels run:
// worker count for strip-parallel loops, the thresholds that enable them,
// and the SIMD extensions the Go toolchain detected.
func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "print runtime and CPU details relevant to matrix kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printEnv(cmd.OutOrStdout())
			return nil
		},
	}
}

func printEnv(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Fprintf(w, "ParallelMinOps: %d\n", matrix.ParallelMinOps)
	fmt.Fprintf(w, "ParallelMinElems: %d\n", matrix.ParallelMinElems)

	switch runtime.GOARCH {
	case "arm64":
		fmt.Fprintln(w, "=== cpu.ARM64 ===")
		fmt.Fprintf(w, "  HasASIMD: %v\n", cpu.ARM64.HasASIMD)
		fmt.Fprintf(w, "  HasFP:    %v\n", cpu.ARM64.HasFP)
		fmt.Fprintf(w, "  HasSVE:   %v\n", cpu.ARM64.HasSVE)
	case "amd64":
		fmt.Fprintln(w, "=== cpu.X86 ===")
		fmt.Fprintf(w, "  HasAVX:     %v\n", cpu.X86.HasAVX)
		fmt.Fprintf(w, "  HasAVX2:    %v\n", cpu.X86.HasAVX2)
		fmt.Fprintf(w, "  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
		fmt.Fprintf(w, "  HasFMA:     %v\n", cpu.X86.HasFMA)
		fmt.Fprintf(w, "  HasSSE2:    %v\n", cpu.X86.HasSSE2)
	}
}
