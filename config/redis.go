package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"learnsphere/utils"
)

func InitRedisDB(addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Print("❌ Failed to connect to ", utils.ColorText("Redis: ", utils.Red), err)
		return nil, err
	}

	log.Print("✅ Connected to ", utils.ColorText("Redis", utils.Green), " successfully")
	return rdb, nil
}
