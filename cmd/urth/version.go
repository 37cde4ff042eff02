package main

import "fmt"

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}

// Run prints the version.
func (c *VersionCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "urth %s\n", Version)
	return nil
}
