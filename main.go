package main

import (
	"os"

	"github.com/abhisek/lingocoach/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
