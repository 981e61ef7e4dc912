package main

import (
	"fmt"
	"os"

	"moodfeed"
	"moodfeed/cmd/commands"
)

// command picks the subcommand; a bare invocation starts the server.
func command(args []string) string {
	if len(args) < 2 {
		return "run"
	}

	return args[1]
}

func main() {
	switch cmd := command(os.Args); cmd {
	case "run":
		commands.HandleRun(os.Args)

	case "help", "-h", "--help":
		commands.HandleHelp(os.Args)
		os.Exit(0)

	case "version", "-v", "--version":
		fmt.Println(moodfeed.StringVersion()) //nolint
		os.Exit(0)

	default:
		commands.HandleHelp(os.Args)
		commands.ExitOnError(fmt.Errorf("unknown command: %s", cmd))
	}
}
