package main

import "github.com/qawamdev/qawam/cmd"

func main() {
	cmd.Execute()
}
