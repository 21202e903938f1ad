// Package main provides the omniadapt CLI: validation and staging for
// the declarative artifacts of an Omnipath knowledge-graph build.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
