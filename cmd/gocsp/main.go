// Command gocsp solves finite-domain constraint satisfaction problems read
// from text or YAML problem files.
package main

import (
	"fmt"
	"os"

	"github.com/gitrdm/gocsp/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
