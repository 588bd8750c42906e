package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/mauryatalluru/neartools/internal/app"
	"github.com/mauryatalluru/neartools/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
