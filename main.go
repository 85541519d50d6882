// Package main is the entry point for the mcyview CLI.
package main

import "mcyview.dev/pkg/mcyview/cmd"

func main() {
	cmd.Execute()
}
