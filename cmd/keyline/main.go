package main

import (
	"fmt"
	"os"

	"github.com/keyline-dev/keyline/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "keyline:", err)
		os.Exit(1)
	}
}
