package main

import "fund-screening/internal/cli"

func main() {
	cli.Execute()
}
