package main

import (
	"os"

	"github.com/matzehuels/planforge/internal/cli"
	"github.com/matzehuels/planforge/pkg/buildinfo"
)

func main() {
	cli.SetVersion(buildinfo.Version, buildinfo.Commit, buildinfo.Date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
