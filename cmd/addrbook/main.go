package main

import "github.com/aalvaropc/addrbook/internal/cli"

func main() {
	cli.Execute()
}
