package main

import "github.com/calcbot/calcbot/cmd"

func main() {
	cmd.Execute()
}
