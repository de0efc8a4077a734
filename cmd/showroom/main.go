// Command showroom is the car catalog CLI.
package main

import (
	"os"

	"showroom/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
