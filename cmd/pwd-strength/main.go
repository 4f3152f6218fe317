package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pwd-strength/internal/cli"
)

func main() {
	// we need a webserver to see the pprof
	go func() {
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			return
		}
	}()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	_ = cli.Execute()
}
