package main

import (
	"os"

	"github.com/stigoleg/clocktime/internal/cli"
)

const appVersion = "1.0.0"

func main() {
	os.Exit(cli.Execute(cli.NewRootCommand(appVersion)))
}
