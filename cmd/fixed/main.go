// fixed formats, parses and allocates fixed point numbers.
//
// Usage:
//
//	fixed format VALUE [--scale N] [--pattern P] [--invert]
//	fixed parse TEXT [--scale N] [--pattern P] [--invert]
//	fixed allocate VALUE --ratios 1,2,3 [--scale N] [--pattern P] [--invert]
//
// Every flag may also be set through a FIXED_ environment variable, e.g.
// FIXED_PATTERN or FIXED_LOG_LEVEL.
package main

import (
	"os"

	"github.com/calebcase/fixed/cmd/fixed/cmd"
)

func main() {
	if err := cmd.Main().Execute(); err != nil {
		os.Exit(1)
	}
}
