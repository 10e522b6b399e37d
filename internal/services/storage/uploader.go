package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/phambaophuc/image-trim/pkg/utils"
)

// Upload stores the buffer under a fresh <millis>_<id>.<ext> key derived from
// filename and returns its public URL.
func (s *StorageService) Upload(ctx context.Context, buffer *bytes.Buffer, filename, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	key := utils.GenerateStorageKey(ext, s.now())

	_, err := s.sbClient.UploadFile(s.bucket, key, bytes.NewReader(buffer.Bytes()))
	if err != nil {
		return "", fmt.Errorf("failed to upload to supabase: %w", err)
	}

	publicURL := s.sbClient.GetPublicUrl(s.bucket, key)
	return publicURL.SignedURL, nil
}

// Delete removes an object from the bucket. path may be a bare key or a public
// URL containing "<bucket>/".
func (s *StorageService) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := s.sbClient.RemoveFile(s.bucket, []string{ObjectKey(s.bucket, path)})
	return err
}

// ObjectKey strips everything up to the last "<bucket>/" from a public URL.
func ObjectKey(bucket, path string) string {
	parts := strings.Split(path, bucket+"/")
	return parts[len(parts)-1]
}
