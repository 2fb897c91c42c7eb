package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/threat-shooter/config"
	"github.com/lixenwraith/threat-shooter/core"
	"github.com/lixenwraith/threat-shooter/logging"
)

var configFlag = flag.String("config", "", "Path to a config file (default: search "+config.FileName+".toml)")

func main() {
	// Terminal is restored by the crash cleanup registered once the screen exists
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	var cfg *config.Config
	var err error
	if *configFlag != "" {
		cfg, err = config.LoadFile(*configFlag)
	} else {
		cfg, err = config.Load(config.SearchPaths()...)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	app, err := NewApp(cfg, logger.Logger)
	if err != nil {
		logger.Error().Err(err).Msg("startup failed")
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	app.Run()
}
