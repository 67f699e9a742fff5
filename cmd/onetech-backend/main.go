// Package main is the entry point for the onetech backend server.
package main

import (
	"os"

	"github.com/onetech-shop/onetech-backend/cmd/onetech-backend/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
