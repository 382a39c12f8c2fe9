package imagehost

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// File is a single image to upload.
type File struct {
	Name    string
	Content io.Reader
}

// Uploader pushes one image to the configured host and returns its
// public URL. No retries; the caller decides how to surface failures.
type Uploader interface {
	Upload(ctx context.Context, file File) (string, error)
}

// UploadAll uploads every file concurrently (no concurrency cap) and
// returns the URLs in input order. The batch is all-or-nothing: any
// single failure fails the whole call and no partial list is returned.
func UploadAll(ctx context.Context, uploader Uploader, files []File) ([]string, error) {
	urls := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			url, err := uploader.Upload(ctx, file)
			if err != nil {
				return fmt.Errorf("upload %s: %w", file.Name, err)
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
