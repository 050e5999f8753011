package main

import "quantum/internal/cli"

func main() {
	cli.Execute()
}
