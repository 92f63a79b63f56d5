package main

import (
	"context"
	"os"

	"github.com/bft-labs/linebatch/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), cli.Options{Args: os.Args[1:]}))
}
