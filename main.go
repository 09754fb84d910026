// Package main is the entry point for the nocturne CLI.
package main

import "nocturne.dev/pkg/nocturne/cmd"

func main() {
	cmd.Execute()
}
