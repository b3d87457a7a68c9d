package main

import "mediad/internal/cli"

func main() {
	cli.Execute()
}
