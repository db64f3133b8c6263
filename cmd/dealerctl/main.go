// dealerctl drives a dealerpost server from the terminal: sync the
// catalog, list and publish posts, and read analytics.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
