package main

import (
	"log"
	"os"
	"time"

	"github.com/fleetdeck-dev/fleetdeck/db"
	"github.com/fleetdeck-dev/fleetdeck/internal/auth"
	"github.com/fleetdeck-dev/fleetdeck/internal/router"
	"github.com/fleetdeck-dev/fleetdeck/internal/scheduler"
	"github.com/fleetdeck-dev/fleetdeck/internal/session"
	"github.com/fleetdeck-dev/fleetdeck/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	dbPath := os.Getenv("FLEETDECK_DB")

	if dbPath == "" {
		dbPath = "fleetdeck.db"
	}

	conn, err := db.Connect(dbPath)

	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := db.Seed(conn); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	st := store.New(conn)
	sessions := session.NewManager(conn)

	sweeper := scheduler.New(st, time.Hour)
	sweeper.Start()
	defer sweeper.Stop()

	r := router.New(st, sessions)

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
