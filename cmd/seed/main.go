// Seeds demo map markers for local development. Existing markers are
// replaced.
package main

import (
	"context"
	"log"
	"time"

	"github.com/zeolike/listing-service/internal/adapter/repository/mongodb"
	"github.com/zeolike/listing-service/internal/config"
	"github.com/zeolike/listing-service/internal/listing/domain"
	"github.com/zeolike/listing-service/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: "console"})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(ctx)

	repo := mongodb.NewPropertyRepository(mongoClient.Database(cfg.MongoDB), appLogger)

	properties := []*domain.Property{
		{
			Name:     "Dream House in Shirpur",
			Location: domain.MapLocation{Lat: 21.341, Lng: 74.882},
			Type:     "property",
			Price:    1200000,
			Image:    "https://example.com/house1.jpg",
			Rating:   4.5,
			Distance: "1.2km",
			Link:     "https://zeolike.in/property/1",
		},
		{
			Name:     "Student Hostel Room",
			Location: domain.MapLocation{Lat: 21.343, Lng: 74.884},
			Type:     "property",
			Price:    5000,
			Image:    "https://example.com/hostel.jpg",
			Rating:   4.0,
			Distance: "0.5km",
			Link:     "https://zeolike.in/property/2",
		},
	}

	if err := repo.ReplaceAll(ctx, properties); err != nil {
		log.Fatalf("Failed to seed properties: %v", err)
	}
	log.Printf("Seeded %d properties", len(properties))
}
