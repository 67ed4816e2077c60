package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/campus-clinic/health-records-service/internal/db"
	"github.com/campus-clinic/health-records-service/internal/records"
	"github.com/campus-clinic/health-records-service/internal/seed"
)

func main() {
	force := flag.Bool("force", false, "delete existing records before seeding")
	flag.Parse()

	log.Println("Health Records Seed Job - Starting")

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("Failed to ensure database schema: %v", err)
	}

	repo := records.NewRepository(database, nil)
	seeder := seed.NewService(repo, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	summary, err := seeder.Seed(ctx, *force)
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
		os.Exit(1)
	}

	if summary.DeletedCount > 0 {
		log.Printf("Cleared %d existing records", summary.DeletedCount)
	}
	for _, record := range summary.Records {
		log.Printf("Inserted %s (%s)", record.Name, record.CourseAndYear)
	}
	log.Printf("✓ Seed completed successfully: %d records inserted", summary.InsertedCount)
	log.Println("Seed Job - Finished")
}
