// Command hexconv converts between raw bytes, hexadecimal
// text and UTF-8 strings from the command line.
package main

import (
	"log/slog"
	"os"
)

func main() {
	cmd := newRootCmd()
	cmd.SetIn(os.Stdin)
	cmd.SetOut(os.Stdout)

	if err := cmd.Execute(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
