package main

import "github.com/kozaktomas/mrzname/cmd"

func main() {
	cmd.Execute()
}
