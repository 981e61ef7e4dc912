package commands

import (
	"os"

	"moodfeed"
	"moodfeed/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("moodfeed error", "err", err.Error())
	os.Exit(1)
}

func version() string {
	return moodfeed.StringVersion()
}
