// Command fomantic plays widget scenarios against an in-process widget host.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/fomantic/cmd/fomantic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
