package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"local-guides/config"
	httpapi "local-guides/restaurant-svc/internal/api/http"
	"local-guides/restaurant-svc/internal/domain"
	"local-guides/restaurant-svc/internal/service"
	"local-guides/restaurant-svc/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "guides.yml", "config file path")
	flag.Parse()

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	ctx := context.Background()

	db := config.MustInitPostgres(settings)
	defer db.Close()

	rdb := config.MustInitRedis(settings)
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(settings)
	defer kafkaWriter.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.Migrate(ctx); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	cache := storage.NewRedisCache(rdb, settings.Redis.TTL)
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	qr := service.DefaultQRGenerator{SiteURL: settings.Restaurant.SiteURL}

	restaurants := service.NewRestaurantService(repository, repository, cache, qr)
	reviews := service.NewReviewService(repository, repository, cache, publisher)

	if settings.Restaurant.SeedFile != "" {
		if err := seed(ctx, restaurants, settings.Restaurant.SeedFile); err != nil {
			log.Fatal("Failed to seed restaurants:", err)
		}
	}

	handler := httpapi.NewHandler(restaurants, reviews)
	httpapi.StartServer(settings.Restaurant.Addr, httpapi.NewRouter(handler))
}

func seed(ctx context.Context, restaurants service.RestaurantServiceInterface, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Seed files come either as a bare array or wrapped as {"restaurants": [...]}.
	var list []domain.Restaurant
	if err := json.Unmarshal(data, &list); err != nil {
		var wrapped struct {
			Restaurants []domain.Restaurant `json:"restaurants"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return fmt.Errorf("failed to decode %s: %w", path, err)
		}
		list = wrapped.Restaurants
	}

	if err := restaurants.Import(ctx, list); err != nil {
		return err
	}
	log.Printf("Seeded %d restaurants from %s", len(list), path)
	return nil
}
