package main

import (
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs"

	"housepriced/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "housepriced:", err)
		os.Exit(1)
	}
}
