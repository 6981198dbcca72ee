package main

import (
	"github.com/oneconcern/git-veil/cmd/git-veil/cmd"
)

func main() {
	cmd.Execute()
}
