package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"jobtrack/internal/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store keeps an allowlist of outstanding refresh tokens so they can be
// revoked. When redis is unreachable the store degrades to a no-op: refresh
// validation falls back to stateless JWT checks instead of locking users out.
type Store struct {
	client *redis.Client
	logger *log.Logger
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

func NewStore(cfg config.RedisConfig, ttl time.Duration, logger *log.Logger) *Store {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[Session] redis unavailable, refresh revocation disabled: %v", err)
		}
		_ = client.Close()
		return &Store{client: nil, logger: logger, ttl: ttl}
	}

	return &Store{client: client, logger: logger, ttl: ttl}
}

func (s *Store) isUnavailable() bool {
	return s == nil || s.client == nil
}

func (s *Store) warnUnavailableOnce(err error) {
	if s == nil || s.logger == nil {
		return
	}
	if s.warnedUnavailable.CompareAndSwap(false, true) {
		s.logger.Printf("[Session] redis unavailable, refresh revocation disabled: %v", err)
	}
}

// Save records a refresh token as outstanding for the given user.
func (s *Store) Save(ctx context.Context, token string, userID uuid.UUID) error {
	if s.isUnavailable() {
		return nil
	}
	if err := s.client.Set(ctx, tokenKey(token), userID.String(), s.ttl).Err(); err != nil {
		s.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// IsActive reports whether a refresh token is still on the allowlist. The
// second return is false when redis is unavailable and the answer is unknown.
func (s *Store) IsActive(ctx context.Context, token string, userID uuid.UUID) (active, known bool) {
	if s.isUnavailable() {
		return false, false
	}
	owner, err := s.client.Get(ctx, tokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, true
		}
		s.warnUnavailableOnce(err)
		return false, false
	}
	return owner == userID.String(), true
}

// Revoke removes a refresh token from the allowlist.
func (s *Store) Revoke(ctx context.Context, token string) error {
	if s.isUnavailable() {
		return nil
	}
	if err := s.client.Del(ctx, tokenKey(token)).Err(); err != nil {
		s.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (s *Store) Close() error {
	if s.isUnavailable() {
		return nil
	}
	return s.client.Close()
}

// Tokens are hashed before use as keys so the raw JWT never lands in redis.
func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(token)))
	return "session:refresh:" + hex.EncodeToString(sum[:])
}
