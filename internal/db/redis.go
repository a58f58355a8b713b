package db

import (
	"context"
	"fmt"

	"collabhive-go/internal/config"
	"collabhive-go/pkg/logger"
	goredis "github.com/redis/go-redis/v9"
)

func NewRedis(cfg config.RedisConfig, log logger.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Info("redis: connected", "addr", cfg.Addr, "db", cfg.DB)
	return client, nil
}
