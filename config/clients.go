package config

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

func MustInitPostgres(s *Settings) *sql.DB {
	db, err := sql.Open("postgres", s.PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(s *Settings) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: s.Redis.Addr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(s *Settings) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{s.Kafka.Broker},
		Topic:   s.Kafka.Topic,
		GroupID: s.Kafka.GroupID,
	})
}

func NewKafkaWriter(s *Settings) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(s.Kafka.Broker),
		Topic:    s.Kafka.Topic,
		Balancer: &kafka.LeastBytes{},
	}
}
