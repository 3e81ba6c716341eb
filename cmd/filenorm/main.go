// Command filenorm standardizes file names: separator and case
// normalization, embedded date reformatting, optional creation-date
// prefixing, and collision-free batch renaming.
package main

import (
	"fmt"
	"os"

	"github.com/backmassage/filenorm/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "filenorm: %v\n", err)
		os.Exit(1)
	}
}
