package main

import (
	"fmt"
	"os"

	"github.com/pumpkit/localnet/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "localnet: %v\n", err)
		os.Exit(1)
	}
}
