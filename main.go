package main

import "github.com/fernvale/bloomwatch/cmd"

func main() {
	cmd.Execute()
}
