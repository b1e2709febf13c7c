package main

import (
	"context"
	"log"

	"github.com/mlagunovs/watertrack/internal/cli"
	"github.com/mlagunovs/watertrack/internal/config"
)

func main() {
	cfg := config.LoadConfig()

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("error initializing app: %v", err)
	}

	app.Run(ctx)
}
