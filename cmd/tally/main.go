// Command tally is a terminal task and note tracker with achievements.
package main

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/tally/internal/cmd"
	"github.com/Iron-Ham/tally/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.IsUserFacing(err) {
			fmt.Fprintln(os.Stderr, "tally:", err)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
			fmt.Fprintln(os.Stderr, "Run 'tally --help' for usage.")
		}
		os.Exit(1)
	}
}
