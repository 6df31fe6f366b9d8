package main

import (
	"os"

	"github.com/Ajugbo/aiq-platform/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
