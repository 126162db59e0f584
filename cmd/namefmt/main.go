package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jlrickert/cli-toolkit/toolkit"

	"github.com/jlrickert/namefmt/pkg/cli"
)

func main() {
	ctx := context.Background()

	rt, err := toolkit.NewRuntime()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	exitCode, err := cli.Run(ctx, rt, os.Args[1:])
	if err != nil {
		os.Exit(exitCode)
	}
	os.Exit(0)
}
