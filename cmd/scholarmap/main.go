// Package main provides the entry point for the scholarmap CLI tool.
package main

import (
	"github.com/scholarmap/scholarmap/cmd/scholarmap/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
