// Package main implements the flashdeck command: the HTTP API server, the
// schema migration tool, and an offline flashcard generator.
//
// Usage:
//
//	flashdeck serve [--migrate] [--config=<path>]
//	flashdeck migrate <up|down|status|version|reset> [--config=<path>]
//	flashdeck generate --notes-file=<path|-> [--output=json|yaml] [--count=n]
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
