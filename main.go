package main

import (
	"os"

	"github.com/kernel/steam-collections/cmd"
)

// Set via ldflags at release time.
var version = "dev"

func main() {
	if err := cmd.Execute(cmd.Metadata{Version: version}); err != nil {
		os.Exit(1)
	}
}
