package main

import (
	"os"

	"github.com/mach-hub-g1/edugamers-engine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
