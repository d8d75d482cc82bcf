package main

import "github.com/naka-gawa/pypi-stats/cmd"

func main() {
	cmd.Execute()
}
