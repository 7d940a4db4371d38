package services

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// PriceCache es el caché clave-valor de precios, poblado por un
// proceso externo de ingesta que no pertenece a este sistema. Solo
// exponemos lectura por clave: las entradas pueden estar ausentes o
// desactualizadas y eso nunca es un error.
type PriceCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
}

// RedisCache es la implementación de producción sobre Redis.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// MemoryCache es una implementación en memoria para pruebas y
// ejecución local sin Redis.
type MemoryCache struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{values: make(map[string]string)}
}

func (c *MemoryCache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.values[key]
	return value, ok, nil
}
