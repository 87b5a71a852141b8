// Package main is the entry point of the tsvcost command.
package main

import "github.com/sarchlab/tsvcost/tsvcost/cmd"

func main() {
	cmd.Execute()
}
