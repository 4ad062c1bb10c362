package main

import "github.com/assetgen/assetgen/cmd"

// main is the entry point of the assetgen CLI.
func main() {
	cmd.Execute()
}
