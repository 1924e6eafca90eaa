package main

import "spiders/internal/cli"

func main() {
	cli.Execute()
}
