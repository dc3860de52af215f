package main

import (
	"os"

	"github.com/martijn/exerlog/internal/cli"
)

// @title exerlog API
// @version 1.0
// @description Exercise tracking API: register users, log exercises and query logs.
// @BasePath /
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
