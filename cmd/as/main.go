package main

import (
	"context"
	"os"
	_ "time/tzdata"

	"activity-sampler/internal/cli"
)

func main() {
	root := cli.NewRootCommand(newBackend, os.Stdout)

	if err := root.Execute(context.Background()); err != nil {
		os.Exit(root.Report(os.Stderr, err))
	}
}
