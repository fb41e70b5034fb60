package main

import (
	"os"

	"github.com/edustream/edustream/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
