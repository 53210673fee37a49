// Package main is the entry point for the tint command.
package main

import (
	"github.com/samber/lo"
	"github.com/tintkit/tint/cmd"
	"github.com/tintkit/tint/config"
	"github.com/tintkit/tint/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
