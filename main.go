package main

import "github.com/aogaki/NBox/cli"

func main() {
	cli.Launch()
}
