package main

import "github.com/aalvaropc/libcoords/internal/cli"

func main() {
	cli.Execute()
}
