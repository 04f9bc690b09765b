package config

import "time"

// Settings is the shared configuration for every local-guides binary.
type Settings struct {
	Postgres   PostgresSettings   `yaml:"postgres" koanf:"postgres"`
	Redis      RedisSettings      `yaml:"redis" koanf:"redis"`
	Kafka      KafkaSettings      `yaml:"kafka" koanf:"kafka"`
	Restaurant RestaurantSettings `yaml:"restaurant" koanf:"restaurant"`
	Analytics  AnalyticsSettings  `yaml:"analytics" koanf:"analytics"`
	Gateway    GatewaySettings    `yaml:"gateway" koanf:"gateway"`
	Client     ClientSettings     `yaml:"client" koanf:"client"`
}

type PostgresSettings struct {
	Host     string `yaml:"host" koanf:"host"`
	Port     string `yaml:"port" koanf:"port"`
	Name     string `yaml:"name" koanf:"name"`
	User     string `yaml:"user" koanf:"user"`
	Password string `yaml:"password" koanf:"password"`
	SSLMode  string `yaml:"sslmode" koanf:"sslmode"`
}

type RedisSettings struct {
	Addr string        `yaml:"addr" koanf:"addr"`
	TTL  time.Duration `yaml:"ttl" koanf:"ttl"`
}

type KafkaSettings struct {
	Broker  string `yaml:"broker" koanf:"broker"`
	Topic   string `yaml:"topic" koanf:"topic"`
	GroupID string `yaml:"group_id" koanf:"group_id"`
}

// RestaurantSettings configures restaurant-svc.
type RestaurantSettings struct {
	Addr     string `yaml:"addr" koanf:"addr"`
	SiteURL  string `yaml:"site_url" koanf:"site_url"`
	SeedFile string `yaml:"seed_file" koanf:"seed_file"`
}

type AnalyticsSettings struct {
	Addr string `yaml:"addr" koanf:"addr"`
}

// GatewaySettings configures web-gateway.
type GatewaySettings struct {
	Addr         string   `yaml:"addr" koanf:"addr"`
	SiteDir      string   `yaml:"site_dir" koanf:"site_dir"`
	APIURL       string   `yaml:"api_url" koanf:"api_url"`
	AnalyticsURL string   `yaml:"analytics_url" koanf:"analytics_url"`
	PrecacheGlob []string `yaml:"precache_glob" koanf:"precache_glob"`
}

// ClientSettings configures the guides CLI.
type ClientSettings struct {
	RemoteURL string        `yaml:"remote_url" koanf:"remote_url"`
	SiteURL   string        `yaml:"site_url" koanf:"site_url"`
	LocalDB   string        `yaml:"local_db" koanf:"local_db"`
	Timeout   time.Duration `yaml:"timeout" koanf:"timeout"`
}

// Default returns the settings used when neither a file nor the
// environment overrides a value.
func Default() *Settings {
	return &Settings{
		Postgres: PostgresSettings{
			Host:    "localhost",
			Port:    "5432",
			Name:    "local_guides",
			User:    "postgres",
			SSLMode: "disable",
		},
		Redis: RedisSettings{
			Addr: "localhost:6379",
			TTL:  10 * time.Minute,
		},
		Kafka: KafkaSettings{
			Broker:  "localhost:9092",
			Topic:   "reviews",
			GroupID: "agg-svc-consumer",
		},
		Restaurant: RestaurantSettings{
			Addr:    ":1337",
			SiteURL: "http://localhost:8000",
		},
		Analytics: AnalyticsSettings{
			Addr: ":8083",
		},
		Gateway: GatewaySettings{
			Addr:         ":8000",
			SiteDir:      "./site",
			APIURL:       "http://localhost:1337",
			AnalyticsURL: "http://localhost:8083",
			PrecacheGlob: []string{"public/**/*.{js,css,json,webp,jpg,png,svg}"},
		},
		Client: ClientSettings{
			RemoteURL: "http://localhost:1337",
			SiteURL:   "http://localhost:8000",
			LocalDB:   "local-guides-db.sqlite",
			Timeout:   5 * time.Second,
		},
	}
}
