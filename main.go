// ABOUTME: Entry point for the filmfit CLI
// ABOUTME: Command-line client for the FilmFit film recommendation service

package main

import (
	"fmt"
	"os"

	"github.com/nsttdn/Film-fit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
