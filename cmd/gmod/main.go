package main

import "github.com/mcoot/gamemodules/internal/cli"

func main() {
	cli.Execute()
}
