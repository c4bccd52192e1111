package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/existflow/leadboard/internal/logger"
	"github.com/existflow/leadboard/server"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "1337"
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = os.Getenv("LEADBOARD_DB")
	}
	if dbURL == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to resolve home directory: %v", err)
		}
		dir := filepath.Join(home, ".leadboard")
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
		dbURL = filepath.Join(dir, "leads.db")
	}

	logCfg := logger.DefaultConfig()
	logCfg.Console = true
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	srv, err := server.New(dbURL, os.Getenv("LEADBOARD_SERVER_TOKEN"))
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	defer func() {
		if err := srv.Close(); err != nil {
			log.Printf("Error closing server: %v", err)
		}
	}()

	log.Printf("Leadboard dev server starting on :%s", port)
	if err := srv.Start(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
