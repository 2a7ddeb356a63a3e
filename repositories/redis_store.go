package repositories

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/redis/go-redis/v9"

	"emoji-shop/config"
	"emoji-shop/models"
)

// RedisStore keeps each product as a JSON blob at "<namespace>:<id>". A single
// Redis node serves reads from the same memory it writes to, which covers the
// read-your-writes listing requirement.
type RedisStore struct {
	client    *redis.Client
	namespace string
}

func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	var opt *redis.Options
	if cfg.RedisURL != "" {
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, storeErr(err)
		}
		opt = parsed
	} else {
		opt = &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		}
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, storeErr(err)
	}

	log.Println("Redis blob store connected")
	return &RedisStore{client: client, namespace: cfg.BlobNamespace}, nil
}

func (s *RedisStore) blobKey(key string) string {
	return s.namespace + ":" + key
}

func (s *RedisStore) Get(ctx context.Context, key string) (*models.Product, error) {
	data, err := s.client.Get(ctx, s.blobKey(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return models.ParseProduct(data)
}

func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	keys := []string{}
	prefix := s.namespace + ":"

	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, storeErr(err)
	}
	return keys, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, product *models.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.blobKey(key), data, 0).Err(); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *RedisStore) Close() {
	s.client.Close()
}
