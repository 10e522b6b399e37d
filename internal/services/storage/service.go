// Package storage uploads trimmed banners to Supabase Storage.
package storage

import (
	"errors"
	"strings"
	"time"

	"github.com/phambaophuc/image-trim/internal/config"
	storage_go "github.com/supabase-community/storage-go"
)

var ErrStorageNotConfigured = errors.New("storage not configured")

type StorageService struct {
	sbClient *storage_go.Client
	bucket   string
	now      func() time.Time
}

// NewStorageService returns ErrStorageNotConfigured when SUPABASE_URL is unset.
func NewStorageService(cfg config.SupabaseConfig) (*StorageService, error) {
	if !cfg.Enabled() {
		return nil, ErrStorageNotConfigured
	}

	sbClient := storage_go.NewClient(strings.TrimSuffix(cfg.URL, "/")+"/storage/v1", cfg.KEY, nil)

	return &StorageService{
		sbClient: sbClient,
		bucket:   cfg.BUCKET,
		now:      time.Now,
	}, nil
}

func (s *StorageService) Bucket() string {
	return s.bucket
}
