package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/kanso-fit/internal/adapters/handler/cli"
	"github.com/comitanigiacomo/kanso-fit/internal/config"
	"github.com/comitanigiacomo/kanso-fit/internal/logging"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("[CONFIG] %v", err)
	}

	// command output owns stdout
	logging.Setup(logging.Options{
		Level:   logging.CommandLevel(cfg.LogLevel),
		File:    cfg.LogFile,
		Tee:     true,
		Console: os.Stderr,
	})

	cli.Execute(cli.Options{
		Location: cfg.Location,
		DBPath:   cfg.SQLitePath,
	})
}
