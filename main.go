// Package main is the entry point for the newpipe CLI.
package main

import (
	"github.com/KRTirtho/NewPipeCLI/cmd"
	"github.com/KRTirtho/NewPipeCLI/config"
	"github.com/KRTirtho/NewPipeCLI/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
