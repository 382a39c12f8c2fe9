package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vitrina-app/vitrina-backend/config"
	"github.com/vitrina-app/vitrina-backend/pkg/logger"
)

var client *redis.Client

// Init initializes Redis connection
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// SessionStore tracks revoked admin sessions. Session tokens carry no
// expiry, so revocation entries are kept without a TTL.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Revoke marks a session id as revoked
func (s *SessionStore) Revoke(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf("session:revoked:%s", sessionID)
	if err := s.client.Set(ctx, key, "revoked", 0).Err(); err != nil {
		logger.Error("Failed to revoke session", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return err
	}

	logger.Debug("Session revoked", map[string]interface{}{
		"session_id": sessionID,
	})
	return nil
}

// IsRevoked checks whether a session id has been revoked
func (s *SessionStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	key := fmt.Sprintf("session:revoked:%s", sessionID)
	val, err := s.client.Get(ctx, key).Result()

	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		logger.Error("Failed to check session revocation", err, nil)
		return false, err
	}

	return val == "revoked", nil
}
