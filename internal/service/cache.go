package service

import (
	"context"
	"fmt"
	"time"

	errorHandler "filmpeek/pkg/error"

	"github.com/redis/go-redis/v9"
)

type ICacheService interface {
	GetMovieDataCache(path string) ([]byte, error)
	SetMovieDataCache(path string, value []byte) error
}

const (
	movieDataCachePrefix = "movie:"
	movieDataCacheTtl    = 24 * time.Hour
)

// CacheService keeps upstream catalog responses in redis keyed by the
// request path. A nil client disables caching rather than failing.
type CacheService struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCacheService(rdb *redis.Client) *CacheService {
	return &CacheService{
		rdb: rdb,
		ttl: movieDataCacheTtl,
	}
}

//------------------------------------------
//------------------------------------------

func (s *CacheService) GetMovieDataCache(path string) ([]byte, error) {
	if s.rdb == nil {
		return nil, nil
	}
	result, err := s.rdb.Get(context.Background(), movieDataCachePrefix+path).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (s *CacheService) SetMovieDataCache(path string, value []byte) error {
	if s.rdb == nil {
		return nil
	}
	err := s.rdb.Set(context.Background(), movieDataCachePrefix+path, value, s.ttl).Err()
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving movie data: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}
