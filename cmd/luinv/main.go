// SPDX-License-Identifier: MIT

// Command luinv factors or inverts a small dense matrix given on the command
// line in column-major order.
//
// Usage:
//
//	luinv -rows 3 -cols 3 -data "2,4,-2,1,5,3,1,2,6" -op invert
//
// Operations: decompose (prints L and U), invert, transpose, check (prints
// max |X·A − I| for the computed inverse X).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/denselu/matrix"
)

var log = logging.Logger("luinv")

var (
	rowsFlag    = flag.Int("rows", 0, "number of rows")
	colsFlag    = flag.Int("cols", 0, "number of columns")
	dataFlag    = flag.String("data", "", "comma-separated values in column-major order")
	opFlag      = flag.String("op", opInvert, "operation: decompose|invert|transpose|check")
	verboseFlag = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()

	if *verboseFlag {
		if err := logging.SetLogLevel("luinv", "debug"); err != nil {
			log.Warnf("set log level: %s", err)
		}
	}

	if err := run(os.Stdout, *rowsFlag, *colsFlag, *dataFlag, *opFlag); err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}

// run parses the input matrix and writes the result of op to w.
func run(w io.Writer, rows, cols int, raw, op string) error {
	data, err := parseData(raw)
	if err != nil {
		return err
	}
	a, err := matrix.NewDense(rows, cols, data)
	if err != nil {
		return fmt.Errorf("build input: %w", err)
	}
	log.Debugf("input %dx%d, op=%s", rows, cols, op)

	switch op {
	case opDecompose:
		L, U, err := matrix.Decompose(a)
		if err != nil {
			return fmt.Errorf("decompose: %w", err)
		}
		fmt.Fprintf(w, "L:\n%sU:\n%s", L, U)
	case opInvert:
		X, err := matrix.Invert(a)
		if err != nil {
			return fmt.Errorf("invert: %w", err)
		}
		fmt.Fprint(w, X)
	case opTranspose:
		t, err := matrix.Transpose(a)
		if err != nil {
			return fmt.Errorf("transpose: %w", err)
		}
		fmt.Fprint(w, t)
	case opCheck:
		residual, err := inverseResidual(a)
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}
		fmt.Fprintf(w, "max |X*A - I| = %g\n", residual)
	default:
		return fmt.Errorf("unknown op %q", op)
	}

	return nil
}
