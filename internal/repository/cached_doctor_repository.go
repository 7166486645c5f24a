package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medical-agent-webhook/internal/domain/entity"
	domainRepo "medical-agent-webhook/internal/domain/repository"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefix for cached directory query results
	RedisDirectoryKeyPrefix = "directory:doctors:"

	// Timeout for individual Redis operations
	redisCacheTimeout = 2 * time.Second
)

// cachedDoctorRepository is a cache-aside decorator over another directory.
// Redis failures never fail a lookup; they only bypass the cache.
type cachedDoctorRepository struct {
	next        domainRepo.DoctorRepository
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewCachedDoctorRepository(next domainRepo.DoctorRepository, redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) domainRepo.DoctorRepository {
	return &cachedDoctorRepository{
		next:        next,
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// CacheKey returns the Redis key holding the result of query
func CacheKey(query *entity.DirectoryQuery) string {
	return fmt.Sprintf("%s%016x", RedisDirectoryKeyPrefix, xxhash.Sum64String(query.String()))
}

func (r *cachedDoctorRepository) FindByQuery(ctx context.Context, query *entity.DirectoryQuery) ([]entity.Doctor, error) {
	key := CacheKey(query)

	if doctors, ok := r.get(ctx, key); ok {
		r.log.Debugf("Directory cache hit: %s", query)
		return doctors, nil
	}

	doctors, err := r.next.FindByQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	r.set(ctx, key, doctors)
	return doctors, nil
}

func (r *cachedDoctorRepository) get(ctx context.Context, key string) ([]entity.Doctor, bool) {
	cacheCtx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	data, err := r.redisClient.Get(cacheCtx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warnf("Failed to read directory cache %s: %+v", key, err)
		}
		return nil, false
	}

	var doctors []entity.Doctor
	if err := json.Unmarshal(data, &doctors); err != nil {
		r.log.Warnf("Discarding corrupt directory cache entry %s: %+v", key, err)
		return nil, false
	}
	return doctors, true
}

func (r *cachedDoctorRepository) set(ctx context.Context, key string, doctors []entity.Doctor) {
	if doctors == nil {
		doctors = []entity.Doctor{}
	}

	data, err := json.Marshal(doctors)
	if err != nil {
		r.log.Warnf("Failed to encode directory cache entry %s: %+v", key, err)
		return
	}

	cacheCtx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := r.redisClient.Set(cacheCtx, key, data, r.ttl).Err(); err != nil {
		r.log.Warnf("Failed to write directory cache %s: %+v", key, err)
	}
}
