package main

import (
	"os"

	"local-guides/guides-cli/cmd"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
