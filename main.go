package main

import (
	"os"

	"github.com/AlessioQuercia/hearts-gym/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
