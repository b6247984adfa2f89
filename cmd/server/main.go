package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rohits-web03/plotwise/internal/api"
	"github.com/rohits-web03/plotwise/internal/config"
	"github.com/rohits-web03/plotwise/internal/repositories"
)

// @title Plotwise API
// @version 1.0
// @description Land price estimation service with per-user search history.
func main() {
	store, err := repositories.Open()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// The single admin account is seeded exactly once.
	if err := store.EnsureAdmin(config.Envs.Admin); err != nil {
		log.Fatal("Admin seeding failed:", err)
	}

	mux := api.SetupRouter(store)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Envs.Port),
		Handler: mux,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting Plotwise server on port: %s", config.Envs.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", config.Envs.Port, err)
	}
}
