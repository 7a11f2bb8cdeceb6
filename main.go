package main

import "github.com/alexiusacademia/goconduit/cmd"

func main() {
	cmd.Execute()
}
