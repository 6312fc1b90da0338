package main

import (
	"log"

	"github.com/relabs-tech/wt61_logger/internal/app"
	"github.com/relabs-tech/wt61_logger/internal/config"
)

func main() {
	log.Println("starting wt61-logger console (MQTT subscriber)")

	// Load configuration
	if err := config.InitGlobal("wt61_config.txt"); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunConsoleMQTT(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
