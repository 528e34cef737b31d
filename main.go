package main

import "github.com/notargets/dieselcycle/cmd"

func main() {
	cmd.Execute()
}
