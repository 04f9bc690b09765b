package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"local-guides/agg-svc/internal/service"
	"local-guides/agg-svc/internal/storage"
	"local-guides/config"

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

	db := config.MustInitPostgres(settings)
	defer db.Close()

	rdb := config.MustInitRedis(settings)
	defer rdb.Close()

	reader := config.NewKafkaReader(settings)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(db, rdb))
	consumer.Start(ctx)
}
