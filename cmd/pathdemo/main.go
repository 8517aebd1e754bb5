// pathdemo runs the A* planner over grid maps stored as YAML.
//
// Usage:
//
//	pathdemo genmap [-o map.yaml]
//	pathdemo solve map.yaml [more.yaml ...]
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
