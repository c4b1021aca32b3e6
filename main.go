package main

import (
	"os"

	"github.com/paranoidvpn/paranoidvpn/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
