// Package main implements the entry point for the newshub API server,
// a news aggregator exposing topics, articles, comments, and users over
// PostgreSQL.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; configuration may come entirely from the
	// real environment.
	_ = godotenv.Load()

	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
