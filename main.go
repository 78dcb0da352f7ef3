package main

import (
	"os"

	"github.com/hsaleh/durus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
