package main

import (
	"log"
	"net/http"

	"ecomap/internal/auth"
	"ecomap/internal/config"
	"ecomap/internal/logger"
	"ecomap/internal/middleware"
	"ecomap/internal/routes"
	"ecomap/internal/storage"
)

func main() {
	cfg := config.Load()

	// Initialize structured logging to file
	logger.Setup(cfg.LogFile)

	// Connect to the database
	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	uploads, err := storage.NewUploadStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to prepare upload directory: %v", err)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)

	// Setup Gin router
	r := routes.SetupRouter(db, tokens, uploads)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
