package main

import (
	"fmt"
	"os"

	"github.com/Blackdeer1524/joaat/src/cli"
)

func main() {
	if err := cli.New().RootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
