package main

import (
	"fmt"
	"os"

	"bezplot/internal/cli"
	"bezplot/internal/gui"
)

func main() {
	if len(os.Args) < 2 {
		cmdGUI(nil)
		return
	}

	command := os.Args[1]

	switch {
	case command == "gui":
		cmdGUI(os.Args[2:])

	case command == "help" || command == "-h" || command == "--help":
		cli.PrintUsage(os.Stdout, "bezplot", true)

	case cli.IsCommand(command):
		if err := cli.Run(os.Args[1:], os.Stdout); err != nil {
			fmt.Printf("Error running %s: %v\n", command, err)
			os.Exit(1)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		cli.PrintUsage(os.Stdout, "bezplot", true)
		os.Exit(1)
	}
}

func cmdGUI(args []string) {
	points, verbose, err := cli.ParseGUIArgs(args)
	if err != nil {
		fmt.Printf("Error parsing arguments: %v\n", err)
		os.Exit(1)
	}
	if verbose {
		cli.EnableDebugLogging()
	}

	gui.NewApp().RunWithPoints(points)
}
