// Package main is the entry point for the samples CLI.
package main

import "github.com/mesh-intelligence/samples/internal/cli"

func main() {
	cli.Execute()
}
