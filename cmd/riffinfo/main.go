// Command riffinfo prints the chunk tree of a RIFF file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "riffinfo: %v\n", err)
		os.Exit(1)
	}
}
