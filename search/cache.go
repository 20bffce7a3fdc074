package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"medassist/types"

	"github.com/redis/go-redis/v9"
)

// CacheConfig configures the Redis snippet cache connection and key policy.
type CacheConfig struct {
	Addr      string // e.g. localhost:6379
	Password  string
	DB        int
	KeyPrefix string
	TTL       time.Duration
}

// SnippetCache is a read-through Redis cache for retrieval results, keyed by
// a hash of the augmented query. It is purely transparent: hits return the
// stored snippet list, misses and Redis failures fall through to the search
// backend.
type SnippetCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewSnippetCacheFromEnv creates a cache when REDIS_ADDR is set, using
// REDIS_PASS, REDIS_DB, SNIPPET_CACHE_TTL_SECONDS (optional). Returns nil
// when Redis is not configured; the retriever treats a nil cache as
// disabled.
func NewSnippetCacheFromEnv() (*SnippetCache, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}

	db := 0
	if d := os.Getenv("REDIS_DB"); d != "" {
		if v, err := strconv.Atoi(d); err == nil {
			db = v
		}
	}

	ttl := time.Hour
	if t := os.Getenv("SNIPPET_CACHE_TTL_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	return NewSnippetCache(CacheConfig{
		Addr:      addr,
		Password:  os.Getenv("REDIS_PASS"),
		DB:        db,
		KeyPrefix: "snippets",
		TTL:       ttl,
	})
}

// NewSnippetCache creates a cache and verifies connectivity.
func NewSnippetCache(cfg CacheConfig) (*SnippetCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "snippets"
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &SnippetCache{client: client, keyPrefix: prefix, ttl: ttl}, nil
}

// Close closes the underlying Redis client.
func (c *SnippetCache) Close() error {
	return c.client.Close()
}

// Get returns the cached snippet list for the query, if present.
func (c *SnippetCache) Get(ctx context.Context, query string) ([]types.SourceSnippet, bool) {
	raw, err := c.client.Get(ctx, c.key(query)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("snippet cache read failed: %v", err)
		}
		return nil, false
	}

	var snippets []types.SourceSnippet
	if err := json.Unmarshal([]byte(raw), &snippets); err != nil {
		log.Printf("snippet cache entry corrupt, ignoring: %v", err)
		return nil, false
	}
	return snippets, true
}

// Put stores the snippet list for the query with the configured TTL.
// Failures are logged and swallowed; the cache never affects the answer.
func (c *SnippetCache) Put(ctx context.Context, query string, snippets []types.SourceSnippet) {
	raw, err := json.Marshal(snippets)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(query), raw, c.ttl).Err(); err != nil {
		log.Printf("snippet cache write failed: %v", err)
	}
}

// key hashes the normalized query into a short stable cache key.
func (c *SnippetCache) key(query string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	h := sha256.Sum256([]byte(normalized))
	return c.keyPrefix + ":" + hex.EncodeToString(h[:])[:16]
}
