package main

import "github.com/liangshaojie/portfolio/cmd"

func main() {
	cmd.Execute()
}
