package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore is a local-development backend implementing the Store
// contract on Redis: one hash per top-level node, child keys as hash
// fields, values JSON-encoded. Singleton records ("settings") occupy a
// hash whose fields are the record's own fields.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "store",
	}
}

func (s *RedisStore) hashKey(node string) string {
	return fmt.Sprintf("%s:%s", s.prefix, node)
}

// splitPath returns the top-level node and the optional child key.
func splitPath(path string) (string, string, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch len(parts) {
	case 1:
		return parts[0], "", nil
	case 2:
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("unsupported store path: %s", path)
	}
}

func (s *RedisStore) Get(ctx context.Context, path string, dest interface{}) error {
	node, key, err := splitPath(path)
	if err != nil {
		return err
	}

	if key == "" {
		fields, err := s.client.HGetAll(ctx, s.hashKey(node)).Result()
		if err != nil {
			return err
		}
		if len(fields) == 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		raw := make(map[string]json.RawMessage, len(fields))
		for field, value := range fields {
			raw[field] = json.RawMessage(value)
		}
		b, err := json.Marshal(raw)
		if err != nil {
			return err
		}
		return json.Unmarshal(b, dest)
	}

	value, err := s.client.HGet(ctx, s.hashKey(node), key).Result()
	if err == redis.Nil {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(value), dest)
}

func (s *RedisStore) Set(ctx context.Context, path string, value interface{}) error {
	node, key, err := splitPath(path)
	if err != nil {
		return err
	}

	if key != "" {
		b, err := json.Marshal(value)
		if err != nil {
			return err
		}
		return s.client.HSet(ctx, s.hashKey(node), key, string(b)).Err()
	}

	// Replacing a whole node: clear it, then write every field.
	fields, err := encodeFields(value)
	if err != nil {
		return err
	}
	if err := s.client.Del(ctx, s.hashKey(node)).Err(); err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	return s.client.HSet(ctx, s.hashKey(node), fields...).Err()
}

func (s *RedisStore) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	node, key, err := splitPath(path)
	if err != nil {
		return err
	}

	if key == "" {
		pairs, err := encodeFields(fields)
		if err != nil {
			return err
		}
		if len(pairs) == 0 {
			return nil
		}
		return s.client.HSet(ctx, s.hashKey(node), pairs...).Err()
	}

	// Shallow merge into the stored record.
	merged := make(map[string]interface{})
	existing, err := s.client.HGet(ctx, s.hashKey(node), key).Result()
	if err != nil && err != redis.Nil {
		return err
	}
	if err == nil {
		if err := json.Unmarshal([]byte(existing), &merged); err != nil {
			return fmt.Errorf("corrupt record at %s: %w", path, err)
		}
	}
	for k, v := range fields {
		merged[k] = v
	}

	b, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, s.hashKey(node), key, string(b)).Err()
}

func (s *RedisStore) Delete(ctx context.Context, path string) error {
	node, key, err := splitPath(path)
	if err != nil {
		return err
	}
	if key == "" {
		return s.client.Del(ctx, s.hashKey(node)).Err()
	}
	return s.client.HDel(ctx, s.hashKey(node), key).Err()
}

func (s *RedisStore) Push(ctx context.Context, path string, value interface{}) (string, error) {
	node, key, err := splitPath(path)
	if err != nil {
		return "", err
	}
	if key != "" {
		return "", fmt.Errorf("cannot push under a record path: %s", path)
	}

	newKey := uuid.New().String()
	b, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	if err := s.client.HSet(ctx, s.hashKey(node), newKey, string(b)).Err(); err != nil {
		return "", err
	}
	return newKey, nil
}

// encodeFields flattens a record into field/JSON-value pairs for HSet.
func encodeFields(value interface{}) ([]interface{}, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var record map[string]json.RawMessage
	if err := json.Unmarshal(b, &record); err != nil {
		return nil, fmt.Errorf("store node value must be a record: %w", err)
	}

	pairs := make([]interface{}, 0, len(record)*2)
	for field, raw := range record {
		pairs = append(pairs, field, string(raw))
	}
	return pairs, nil
}
