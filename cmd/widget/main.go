package main

import (
	"context"
	"flag"
	"log"

	"septago-crossword/widget/internal/app"
)

func main() {
	var cfg app.Config
	flag.StringVar(&cfg.ConfigPath, "config", "widget.yaml", "path to the widget config file")
	flag.StringVar(&cfg.HostURL, "host", "", "host websocket URL (overrides config)")
	flag.Parse()

	if err := app.Run(context.Background(), cfg); err != nil {
		log.Fatalf("%v", err)
	}
}
