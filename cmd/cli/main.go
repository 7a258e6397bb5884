package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/lifekeeper/internal/buildinfo"
	"github.com/dmitrijs2005/lifekeeper/internal/cli"
	"github.com/dmitrijs2005/lifekeeper/internal/config"
	"github.com/dmitrijs2005/lifekeeper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
