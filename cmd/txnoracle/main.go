package main

import (
	"os"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
