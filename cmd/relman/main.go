package main

import "relman/internal/cli"

func main() {
	cli.Execute()
}
