package main

import (
	"os"

	"tictactoe/cli"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	err := cli.Root().Execute()
	if err != nil {
		log.Fatal().Err(err).Msg("tictactoe failed")
	}
}
