package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// Memory is an in-process Store used by tests and as a throwaway dev
// backend. Failure modes are injectable so callers' fail-soft and
// permission-denied contracts can be exercised.
type Memory struct {
	mu       sync.RWMutex
	root     map[string]interface{}
	readErr  error
	writeErr error
	seq      int
}

func NewMemory() *Memory {
	return &Memory{
		root: make(map[string]interface{}),
	}
}

// FailReads makes every Get return err until reset with nil.
func (m *Memory) FailReads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// FailWrites makes every Set/Update/Delete/Push return err until reset
// with nil.
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

func (m *Memory) Get(ctx context.Context, path string, dest interface{}) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.readErr != nil {
		return m.readErr
	}

	node, ok := m.lookup(path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	b, err := json.Marshal(node)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dest)
}

func (m *Memory) Set(ctx context.Context, path string, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return m.writeErr
	}

	normalized, err := toJSONValue(value)
	if err != nil {
		return err
	}

	parent, key, err := m.parentOf(path, true)
	if err != nil {
		return err
	}
	parent[key] = normalized
	return nil
}

func (m *Memory) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return m.writeErr
	}

	parent, key, err := m.parentOf(path, true)
	if err != nil {
		return err
	}

	record, ok := parent[key].(map[string]interface{})
	if !ok {
		record = make(map[string]interface{})
		parent[key] = record
	}
	for k, v := range fields {
		normalized, err := toJSONValue(v)
		if err != nil {
			return err
		}
		record[k] = normalized
	}
	return nil
}

func (m *Memory) Delete(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return m.writeErr
	}

	parent, key, err := m.parentOf(path, false)
	if err != nil || parent == nil {
		// Removing an absent node succeeds, matching the hosted store.
		return nil
	}
	delete(parent, key)
	return nil
}

func (m *Memory) Push(ctx context.Context, path string, value interface{}) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return "", m.writeErr
	}

	normalized, err := toJSONValue(value)
	if err != nil {
		return "", err
	}

	m.seq++
	key := fmt.Sprintf("-key%06d", m.seq)

	parent, childKey, err := m.parentOf(path+"/"+key, true)
	if err != nil {
		return "", err
	}
	parent[childKey] = normalized
	return key, nil
}

// lookup walks the path and returns the node, if present.
func (m *Memory) lookup(path string) (interface{}, bool) {
	var cur interface{} = m.root
	for _, seg := range segments(path) {
		asMap, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = asMap[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// parentOf returns the map holding the final path segment. With create
// set, intermediate maps are materialized; otherwise a missing parent
// yields (nil, "", nil).
func (m *Memory) parentOf(path string, create bool) (map[string]interface{}, string, error) {
	segs := segments(path)
	if len(segs) == 0 {
		return nil, "", fmt.Errorf("empty store path")
	}

	cur := m.root
	for _, seg := range segs[:len(segs)-1] {
		next, ok := cur[seg].(map[string]interface{})
		if !ok {
			if !create {
				return nil, "", nil
			}
			next = make(map[string]interface{})
			cur[seg] = next
		}
		cur = next
	}
	return cur, segs[len(segs)-1], nil
}

func segments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// toJSONValue round-trips a value through JSON so the stored tree only
// contains plain maps, slices and scalars.
func toJSONValue(value interface{}) (interface{}, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
