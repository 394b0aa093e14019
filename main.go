// Package main is the entry point for the covdelta CLI.
package main

import "covdelta.dev/pkg/covdelta/cmd"

func main() {
	cmd.Execute()
}
