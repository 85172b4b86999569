// Command dispatchsim runs the emergency dispatch console.
//
// With no flags it serves the built-in network on stdin/stdout:
//
//	dispatchsim
//	dispatchsim --config city.yaml --log-level debug
//
// Diagnostics go to stderr so the operator transcript on stdout is unaffected.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
