package main

import (
	"os"

	"github.com/mosegrant/capkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
