package main

import (
	"flag"
	"log"
	"os"

	httpapi "local-guides/analytics-svc/internal/api/http"
	"local-guides/analytics-svc/internal/service"
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

	svc := service.NewAnalyticsService(db, rdb)
	httpapi.StartServer(settings.Analytics.Addr, httpapi.NewRouter(httpapi.NewHandler(svc)))
}
