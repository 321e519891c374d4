package main

import (
	"os"

	"github.com/boostpow/boostpub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
