// Package main is the entry point for the preniv application.
package main

import (
	"github.com/preniv-cli/preniv/cmd"
	"github.com/preniv-cli/preniv/config"
	"github.com/preniv-cli/preniv/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
