package main

import (
	"os"

	"github.com/contre95/namer/src/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
