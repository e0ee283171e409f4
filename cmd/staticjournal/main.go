package main

import (
	"context"
	"os"

	"StaticJournal/internal/cli"
)

func main() {
	ctx := context.Background()
	os.Exit(cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr))
}
