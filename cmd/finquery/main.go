package main

import (
	"os"

	"github.com/finquery/finquery-go/cmd/finquery/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
