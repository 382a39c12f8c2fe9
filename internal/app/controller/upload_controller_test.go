package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vitrina-app/vitrina-backend/internal/errors"
	"github.com/vitrina-app/vitrina-backend/internal/imagehost"
)

// stubUploader mirrors names to URLs, failing for names in failOn.
type stubUploader struct {
	failOn map[string]bool
}

func (s *stubUploader) Upload(ctx context.Context, file imagehost.File) (string, error) {
	if s.failOn[file.Name] {
		return "", errors.New("host rejected the image")
	}
	if _, err := io.Copy(io.Discard, file.Content); err != nil {
		return "", err
	}
	return "https://host/" + file.Name, nil
}

func multipartBody(t *testing.T, names ...string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, name := range names {
		part, err := writer.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes for " + name))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func setupUploadControllerTest(uploader imagehost.Uploader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewUploadController(uploader)
	router.POST("/upload/images", controller.UploadImages)
	return router
}

func TestUploadController_UploadImages(t *testing.T) {
	router := setupUploadControllerTest(&stubUploader{})

	body, contentType := multipartBody(t, "a.jpg", "b.jpg", "c.jpg")
	req := httptest.NewRequest(http.MethodPost, "/upload/images", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		URLs  []string `json:"urls"`
		Count int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 3, response.Count)
	assert.Equal(t, []string{
		"https://host/a.jpg",
		"https://host/b.jpg",
		"https://host/c.jpg",
	}, response.URLs)
}

func TestUploadController_UploadImages_NoFiles(t *testing.T) {
	router := setupUploadControllerTest(&stubUploader{})

	body, contentType := multipartBody(t)
	req := httptest.NewRequest(http.MethodPost, "/upload/images", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, apperrors.UploadNoFiles, response.Error)
}

func TestUploadController_UploadImages_AllOrNothing(t *testing.T) {
	router := setupUploadControllerTest(&stubUploader{failOn: map[string]bool{"b.jpg": true}})

	body, contentType := multipartBody(t, "a.jpg", "b.jpg", "c.jpg")
	req := httptest.NewRequest(http.MethodPost, "/upload/images", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var response apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, apperrors.UploadFailed, response.Error)
}
