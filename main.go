package main

import (
	"fmt"
	"os"

	"github.com/zjrosen/trackdown/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "trackdown:", err)
		os.Exit(1)
	}
}
