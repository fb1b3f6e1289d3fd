package main

import "github.com/quietbooks/quietbooks/cmd/qbctl/cmd"

func main() {
	cmd.Execute()
}
