package main

import "github.com/Arden28/studely-client/cmd/studelyctl/cmd"

func main() {
	cmd.Execute()
}
