package main

import "github.com/maratik123/tsp/cmd"

func main() {
	cmd.Execute()
}
