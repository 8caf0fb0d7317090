// Package main is the entry point for the dqt CLI client.
package main

import (
	"github.com/donaldgifford/device-quote/cmd/dqt/cmd"
)

func main() {
	cmd.Execute()
}
