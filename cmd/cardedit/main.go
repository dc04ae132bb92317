package main

import (
	"fmt"
	"os"

	"github.com/kobzarvs/cardedit/internal/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cardedit:", err)
		os.Exit(1)
	}
}
