// Command gocrc computes, verifies, and catalogues CRC checksums.
package main

import (
	"fmt"
	"os"

	"github.com/nickolajgrishuk/gocrc/cmd/gocrc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
