package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/groupformer/internal/cmd"
	"github.com/katalvlaran/groupformer/internal/config"
)

func main() {
	if err := config.LoadEnvFiles(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
