package main

import (
	"os"

	"github.com/saran-io/gdrive-hub-integration/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
