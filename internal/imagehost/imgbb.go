package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// ImgbbClient uploads images to the imgbb hosting API: a multipart POST
// carrying the binary image and the account's API key; the public URL
// comes back nested in the JSON body.
type ImgbbClient struct {
	apiKey     string
	uploadURL  string
	httpClient *http.Client
}

func NewImgbbClient(apiKey, uploadURL string) *ImgbbClient {
	return &ImgbbClient{
		apiKey:    apiKey,
		uploadURL: uploadURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *ImgbbClient) Upload(ctx context.Context, file File) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("key", c.apiKey); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	part, err := writer.CreateFormFile("image", file.Name)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("image host returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Data struct {
			DisplayURL string `json:"display_url"`
		} `json:"data"`
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if result.Data.DisplayURL == "" {
		return "", fmt.Errorf("upload response carried no display URL")
	}

	return result.Data.DisplayURL, nil
}
