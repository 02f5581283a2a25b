// Command fixtura computes frame-driven animation styles and accessible
// palettes for cricket stats graphics.
package main

import (
	"fmt"
	"os"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
