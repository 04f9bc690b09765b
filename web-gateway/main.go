package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"local-guides/config"
	"local-guides/web-gateway/internal/gateway"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
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

	gw := gateway.NewGateway(gateway.Config{
		APIURL:        settings.Gateway.APIURL,
		AnalyticsURL:  settings.Gateway.AnalyticsURL,
		SiteDir:       settings.Gateway.SiteDir,
		PrecacheGlobs: settings.Gateway.PrecacheGlob,
	}, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(r)

	log.Printf("Web Gateway starting on %s, serving %s", settings.Gateway.Addr, settings.Gateway.SiteDir)
	log.Fatal(http.ListenAndServe(settings.Gateway.Addr, handler))
}
