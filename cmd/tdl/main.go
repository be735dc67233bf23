package main

import (
	"fmt"
	"os"

	"github.com/msto63/tdl/cmd/tdl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !cmd.IsReported(err) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(cmd.ExitCode(err))
	}
}
