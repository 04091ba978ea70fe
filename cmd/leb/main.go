package main

import (
	"os"

	"github.com/go-leb/leb128/cmd/leb/cmds"
)

func main() {
	if err := cmds.New().Execute(); err != nil {
		os.Exit(1)
	}
}
