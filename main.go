package main

import (
	"fmt"
	"os"

	"github.com/imsgtui/imsg/cmd"
	"github.com/imsgtui/imsg/internal/paths"
)

// Version information set via ldflags at build time.
var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Configuration file is located at: %s\n", paths.ConfigFile())
		fmt.Fprintln(os.Stderr, "You may need to delete this file if the configuration is malformed.")
		os.Exit(1)
	}
}
