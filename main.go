// Package main is the entry point of the alglib playground.
package main

import (
	"github.com/alglib/alglib/cmd"
	"github.com/alglib/alglib/config"
	"github.com/alglib/alglib/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
