package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// FirebaseStore talks to a Firebase Realtime Database over its REST API.
// Every node is addressable as {base}/{path}.json; pushes are POSTs that
// return the generated child key.
type FirebaseStore struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

func NewFirebase(baseURL, authToken string) *FirebaseStore {
	return &FirebaseStore{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *FirebaseStore) nodeURL(path string) string {
	u := fmt.Sprintf("%s/%s.json", s.baseURL, strings.Trim(path, "/"))
	if s.authToken != "" {
		u += "?auth=" + url.QueryEscape(s.authToken)
	}
	return u
}

func (s *FirebaseStore) doRequest(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.nodeURL(path), reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s %s returned status %d", ErrPermissionDenied, method, path, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("unexpected status code %d for %s %s: %s", resp.StatusCode, method, path, string(body))
	}

	return body, nil
}

func (s *FirebaseStore) Get(ctx context.Context, path string, dest interface{}) error {
	body, err := s.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	// An absent node reads as JSON null, not as an HTTP error.
	if string(bytes.TrimSpace(body)) == "null" {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to decode record at %s: %w", path, err)
	}
	return nil
}

func (s *FirebaseStore) Set(ctx context.Context, path string, value interface{}) error {
	_, err := s.doRequest(ctx, http.MethodPut, path, value)
	return err
}

func (s *FirebaseStore) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	_, err := s.doRequest(ctx, http.MethodPatch, path, fields)
	return err
}

func (s *FirebaseStore) Delete(ctx context.Context, path string) error {
	_, err := s.doRequest(ctx, http.MethodDelete, path, nil)
	return err
}

func (s *FirebaseStore) Push(ctx context.Context, path string, value interface{}) (string, error) {
	body, err := s.doRequest(ctx, http.MethodPost, path, value)
	if err != nil {
		return "", err
	}

	var result struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode push response: %w", err)
	}
	if result.Name == "" {
		return "", fmt.Errorf("push to %s returned no key", path)
	}
	return result.Name, nil
}
