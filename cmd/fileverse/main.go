package main

import (
	"context"

	"github.com/jpl-au/fileverse/cmd/fileverse/commands"
	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), commands.Root())
}
