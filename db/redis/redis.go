package redis

import (
	"context"
	"fmt"
	"time"

	"filmpeek/configs"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to redis and returns the client handle.
// The caller decides what to do on connection failure, a dead cache
// must not keep the api from serving.
func NewRedisClient() (*redis.Client, error) {
	time.Sleep(time.Duration(configs.GetConfigs().WaitForRedisConnectionSec) * time.Second)
	client := redis.NewClient(&redis.Options{
		Addr:     configs.GetConfigs().RedisUrl,
		Password: configs.GetConfigs().RedisPassword,
		DB:       0,
	})
	ctx := context.Background()
	pong, err := client.Ping(ctx).Result()
	fmt.Println("====> [[FilmPeek Redis Client:", pong, err, "]]")
	if err != nil {
		return nil, err
	}
	return client, nil
}
