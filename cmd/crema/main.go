// Command crema is the espresso shot tracker CLI.
package main

import (
	"fmt"
	"os"

	"github.com/crema-app/crema/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
