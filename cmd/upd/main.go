package main

import (
	"fmt"
	"os"

	"github.com/rvben/upd/internal/launcher"
)

func main() {
	code, err := launcher.Run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}
