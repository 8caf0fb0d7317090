// Package main is the entry point for the device-quote server.
package main

import (
	"os"

	"github.com/donaldgifford/device-quote/cmd/device-quote/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
