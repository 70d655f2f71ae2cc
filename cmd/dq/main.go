package main

import (
	"os"

	"github.com/Tac0Dude/data-quality-cli/internal/adapters/inbound/cli"
)

func main() {
	os.Exit(cli.Execute())
}
