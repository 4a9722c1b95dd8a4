// Package main provides the entry point for the infodump CLI.
package main

import (
	"os"

	"github.com/josephfleet/infodump/cmd/infodump/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
