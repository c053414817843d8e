package main

import "github.com/rokudocs/brsdoc/cmd"

func main() {
	cmd.Execute()
}
