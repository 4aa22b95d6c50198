package main

import (
	"os"

	"winvol/internal/adapter/primary/cli"
)

func main() {
	app := &cli.App{Out: os.Stdout, Getenv: os.Getenv}
	os.Exit(app.Run(os.Args[1:]))
}
