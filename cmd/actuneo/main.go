// SPDX-License-Identifier: MIT

// Command actuneo evaluates mortality tables and prices life-contingent
// products from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "actuneo:", err)
		os.Exit(1)
	}
}
