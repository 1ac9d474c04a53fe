package main

import "github.com/Govind-619/TurboLeague/cmd"

func main() {
	cmd.Execute()
}
