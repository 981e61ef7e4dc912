package commands

import "fmt"

const help = `moodfeed %s

usage: %s [command] [arguments]

commands:
  run [config.yml]  start the http server (default); the config file is
                    optional, environment variables and .env override it
  version           print the version
  help              print this message
`

func HandleHelp(args []string) {
	name := "moodfeed"
	if len(args) > 0 {
		name = args[0]
	}

	fmt.Printf(help, version(), name) //nolint
}
