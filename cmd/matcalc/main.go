// SPDX-License-Identifier: MIT

// Command matcalc evaluates dense-matrix operations from the command line.
//
// Operands are given as "RxC:v,v,..." with values in column-major order, or,
// when a flag is omitted, entered interactively element by element:
//
//	matcalc mul --a 2x3:1,4,2,5,3,6 --b 3x2:1,0,0,1,1,1
//	matcalc pow --a 2x2:1,1,0,1 -n 5
//	matcalc dij --rows 2 --cols 2 -i 0 -j 1 --ele 5
//	matcalc rand --rows 3 --cols 3 --seed 42
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
