package main

import (
	"os"

	"github.com/njprem/BizSuite_BackEnd/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
