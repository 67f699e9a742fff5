// Package main is the entry point for the onetech CLI client.
package main

import (
	"github.com/onetech-shop/onetech-backend/cmd/onetech/cmd"
)

func main() {
	cmd.Execute()
}
