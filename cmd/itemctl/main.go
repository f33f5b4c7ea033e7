// Package main is the operator CLI for the item tracker. It shares the
// server's configuration layers and talks to the same Notion database.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(&App{}).Execute(); err != nil {
		os.Exit(1)
	}
}
