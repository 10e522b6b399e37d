package storage

import (
	"context"

	storage_go "github.com/supabase-community/storage-go"
)

// HealthKey names the banner bucket in health reports, e.g. "supabase:banners".
func (s *StorageService) HealthKey() string {
	return "supabase:" + s.bucket
}

// HealthCheck lists at most one object in the banner bucket to confirm it is
// reachable with the configured key.
func (s *StorageService) HealthCheck(ctx context.Context) map[string]string {
	status := make(map[string]string)
	key := s.HealthKey()

	if err := ctx.Err(); err != nil {
		status[key] = "unhealthy: " + err.Error()
		return status
	}

	_, err := s.sbClient.ListFiles(s.bucket, "", storage_go.FileSearchOptions{Limit: 1})
	if err != nil {
		status[key] = "unhealthy: " + err.Error()
	} else {
		status[key] = "healthy"
	}

	return status
}
