package main

import (
	"os"

	"github.com/Makepad-fr/forever/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
