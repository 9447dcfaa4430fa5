// Seed command: populates the database with sample data for development.
//
//	go run ./cmd/seed -count 10
//	go run ./cmd/seed -count 25 -clear
package main

import (
	"flag"
	"log"

	"travel-api/config"
	"travel-api/internal/seed"
	"travel-api/pkg/database"
)

func main() {
	count := flag.Int("count", 10, "number of records to generate per entity type")
	clear := flag.Bool("clear", false, "clear existing data before seeding")
	flag.Parse()

	cfg := config.Load()
	db := database.NewPostgresDB(cfg.DSN())

	result, err := seed.Run(db, seed.Options{Count: *count, Clear: *clear})
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Printf("successfully seeded database with %d users, %d listings, %d bookings, %d reviews",
		result.Users, result.Listings, result.Bookings, result.Reviews)
}
