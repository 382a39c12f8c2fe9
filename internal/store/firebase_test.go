package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirebaseStore_GetAbsentNodeIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products.json", r.URL.Path)
		w.Write([]byte("null"))
	}))
	defer server.Close()

	s := NewFirebase(server.URL, "")
	var dest map[string]interface{}
	err := s.Get(context.Background(), "products", &dest)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFirebaseStore_GetDecodesRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"Candle","price":12.5}`))
	}))
	defer server.Close()

	s := NewFirebase(server.URL, "")
	var dest map[string]interface{}
	err := s.Get(context.Background(), "products/abc", &dest)
	require.NoError(t, err)
	assert.Equal(t, "Candle", dest["name"])
	assert.Equal(t, 12.5, dest["price"])
}

func TestFirebaseStore_AuthTokenAppended(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.URL.Query().Get("auth")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	s := NewFirebase(server.URL, "db-secret")
	require.NoError(t, s.Set(context.Background(), "settings", map[string]interface{}{}))
	assert.Equal(t, "db-secret", gotAuth)
}

func TestFirebaseStore_PushReturnsGeneratedKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		json.NewEncoder(w).Encode(map[string]string{"name": "-Nabc123"})
	}))
	defer server.Close()

	s := NewFirebase(server.URL, "")
	key, err := s.Push(context.Background(), "products", map[string]interface{}{"name": "X"})
	require.NoError(t, err)
	assert.Equal(t, "-Nabc123", key)
}

func TestFirebaseStore_WriteRejectionIsPermissionDenied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Permission denied"}`))
	}))
	defer server.Close()

	s := NewFirebase(server.URL, "")
	_, err := s.Push(context.Background(), "products", map[string]interface{}{"name": "X"})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestFirebaseStore_UpdateUsesPatch(t *testing.T) {
	var gotMethod string
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	s := NewFirebase(server.URL, "")
	err := s.Update(context.Background(), "products/abc", map[string]interface{}{"price": 99})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, float64(99), gotBody["price"])
}
