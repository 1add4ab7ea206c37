// Command etl is the admin data-import tool for the local catalog store:
// CSV import with configurable field mappings, plus the reset/clear/stats
// maintenance actions from the admin dashboard.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := NewRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
