package cmd

import (
	"fmt"
	"io"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "tyrepage %s\n", Version)
}
