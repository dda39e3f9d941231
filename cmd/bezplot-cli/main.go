// CLI-only version (no GUI dependencies)
package main

import (
	"fmt"
	"os"

	"bezplot/internal/cli"
)

func main() {
	if len(os.Args) < 2 {
		cli.PrintUsage(os.Stdout, "bezplot-cli", false)
		os.Exit(1)
	}

	command := os.Args[1]

	switch {
	case command == "help" || command == "-h" || command == "--help":
		cli.PrintUsage(os.Stdout, "bezplot-cli", false)

	case cli.IsCommand(command):
		if err := cli.Run(os.Args[1:], os.Stdout); err != nil {
			fmt.Printf("Error running %s: %v\n", command, err)
			os.Exit(1)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		cli.PrintUsage(os.Stdout, "bezplot-cli", false)
		os.Exit(1)
	}
}
