package store

import (
	"context"
	"errors"
)

// Store is the contract of the hosted hierarchical key-value database.
// Records live under slash-separated paths ("products/{id}", "settings");
// values are flat JSON maps of entity fields.
type Store interface {
	// Get decodes the value at path into dest. Returns ErrNotFound if the
	// node does not exist.
	Get(ctx context.Context, path string, dest interface{}) error

	// Set replaces the value at path.
	Set(ctx context.Context, path string, value interface{}) error

	// Update performs a shallow field merge at path; unspecified fields
	// are left untouched.
	Update(ctx context.Context, path string, fields map[string]interface{}) error

	// Delete hard-removes the node at path.
	Delete(ctx context.Context, path string) error

	// Push stores value under a newly minted child key of path and
	// returns the key.
	Push(ctx context.Context, path string, value interface{}) (string, error)
}

var (
	// ErrNotFound is returned when the addressed node does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrPermissionDenied is returned when the backend's access rules
	// reject the operation (HTTP 401/403 from the hosted store).
	ErrPermissionDenied = errors.New("permission denied by store access rules")
)
