// fixmatch CLI - checks FIX messages against declarative criteria
package main

import (
	"os"

	"github.com/qfu/fixmatch/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate

	os.Exit(cli.Main())
}
