package main

import "github.com/kozaktomas/face-filters/cmd"

func main() {
	cmd.Execute()
}
