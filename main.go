package main

import (
	"os"

	"github.com/depguard/depguard/internal/adapters/inbound/cli"
)

func main() {
	os.Exit(cli.Execute())
}
