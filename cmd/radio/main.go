// Command radio replays radio group scenarios and prints the state after
// every step.
package main

import (
	"os"

	"github.com/go-drift/radio/cmd/radio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
