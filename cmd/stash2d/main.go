// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/stash2d/cmd/stash2d/cmd"
)

func main() {
	cmd.Execute()
}
