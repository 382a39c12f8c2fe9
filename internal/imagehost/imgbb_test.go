package imagehost

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImgbbClient_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "test-key", r.FormValue("key"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "mug.jpg", header.Filename)

		fmt.Fprint(w, `{"data":{"display_url":"https://i.ibb.co/abc/mug.jpg"},"success":true}`)
	}))
	defer server.Close()

	client := NewImgbbClient("test-key", server.URL)

	url, err := client.Upload(context.Background(), File{
		Name:    "mug.jpg",
		Content: strings.NewReader("fake image bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://i.ibb.co/abc/mug.jpg", url)
}

func TestImgbbClient_Upload_HostError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"Invalid API key"}}`)
	}))
	defer server.Close()

	client := NewImgbbClient("bad-key", server.URL)

	_, err := client.Upload(context.Background(), File{
		Name:    "mug.jpg",
		Content: strings.NewReader("fake image bytes"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestImgbbClient_Upload_MissingURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{},"success":true}`)
	}))
	defer server.Close()

	client := NewImgbbClient("test-key", server.URL)

	_, err := client.Upload(context.Background(), File{
		Name:    "mug.jpg",
		Content: strings.NewReader("fake image bytes"),
	})

	assert.Error(t, err)
}
