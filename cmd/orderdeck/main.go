package main

import (
	"context"
	"log"

	"orderdeck/internal/cli"
	"orderdeck/internal/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
